// Package curriculum holds the static topic records the site is built
// from. The content is compiled into the binary; build and view both
// read from here.
package curriculum

import "github.com/gouthamgo/apex-academy/internal/lesson"

// Topics returns the curriculum in presentation order.
func Topics() []lesson.Topic {
	return topics
}

// BySlug returns the topic with the given slug, or false when no such
// topic exists.
func BySlug(slug string) (lesson.Topic, bool) {
	for _, t := range topics {
		if t.Slug == slug {
			return t, true
		}
	}
	return lesson.Topic{}, false
}

var topics = []lesson.Topic{
	{
		Slug:        "getting-started",
		Title:       "Getting Started with Apex",
		Description: "What Apex is, where it runs, and your first lines of code.",
		Icon:        "rocket",
		Content: lesson.Markdown(`# Getting Started with Apex
**Apex is a strongly typed, object-oriented language that runs on the Salesforce platform.**
If you know Java or C#, the syntax will feel familiar. The big difference is where your code runs: on Salesforce servers, inside governor limits, right next to your data.
## Where Apex Runs
- Triggers, which fire when records change
- Anonymous blocks, for one-off scripts in the Developer Console
- Classes, for reusable logic and scheduled or queueable jobs
## Your First Statement
Open the Developer Console, then Execute Anonymous, and run:
` + "```apex" + `
System.debug('Hello from Apex!');
` + "```" + `
The ` + "`System.debug`" + ` method writes to the debug log. You will use it constantly, so learn to filter logs early.
### Case Insensitivity
Apex is case-insensitive: ` + "`System.Debug`" + ` and ` + "`system.debug`" + ` are the same call. Pick a convention and stick to it anyway.`),
	},
	{
		Slug:        "variables",
		Title:       "Variables & Data Types",
		Description: "Primitives, null handling, and how Apex stores your values.",
		Icon:        "database",
		Content: lesson.Markdown(`# Variables & Data Types
Every variable in Apex has a declared type, and every type can hold ` + "`null`" + `.
## Primitive Types
- Integer, a 32-bit whole number
- Decimal, arbitrary precision, use it for money
- String, text of any length
- Boolean, true, false, or null
- Id, an 18-character Salesforce record identifier
- Date, Datetime and Time for temporal values
` + "```apex" + `
Integer count = 42;
Decimal price = 19.99;
String greeting = 'Hello';
Boolean isActive = true;
Id accountId = '001xx000003DGbYAAW';
` + "```" + `
### The Null Trap
**Uninitialized variables are null, not zero or empty.**
Calling a method on a null String throws a ` + "`NullPointerException`" + `. Guard with an explicit check before dereferencing:
` + "```apex" + `
String name;
if (name != null && name.startsWith('A')) {
    System.debug('starts with A');
}
` + "```"),
	},
	{
		Slug:        "collections",
		Title:       "Collections",
		Description: "Lists, Sets, and Maps, the backbone of bulkified code.",
		Icon:        "layers",
		Content: lesson.Markdown(`# Collections
Apex gives you three collection types. Almost every pattern on the platform, bulkification above all, is built from them.
## List
An ordered sequence, duplicates allowed.
` + "```apex" + `
List<String> names = new List<String>{'Ada', 'Grace', 'Ada'};
names.add('Margaret');
System.debug(names[0]);
` + "```" + `
## Set
Unordered, unique members. Perfect for collecting record Ids.
` + "```apex" + `
Set<Id> accountIds = new Set<Id>();
for (Contact c : contacts) {
    accountIds.add(c.AccountId);
}
` + "```" + `
## Map
Key to value pairs. The idiomatic way to look up related records without nested loops.
` + "```apex" + `
Map<Id, Account> accountsById = new Map<Id, Account>(
    [SELECT Id, Name FROM Account WHERE Id IN :accountIds]
);
` + "```" + `
**Rule of thumb: if you wrote a query or a DML statement inside a loop, you needed a collection instead.**`),
	},
	{
		Slug:        "soql",
		Title:       "SOQL Queries",
		Description: "Querying records with the Salesforce Object Query Language.",
		Icon:        "search",
		Content: lesson.Markdown(`# SOQL Queries
SOQL looks like SQL but queries the object model, not arbitrary tables. No ` + "`SELECT *`" + `, no joins, relationships instead.
## Basic Shape
` + "```apex" + `
List<Account> accounts = [
    SELECT Id, Name, Industry
    FROM Account
    WHERE Industry = 'Technology'
    ORDER BY Name
    LIMIT 100
];
` + "```" + `
## Binding Variables
Prefix an Apex variable with a colon to bind it into the query. Bound values are never string-concatenated, so injection is off the table.
` + "```apex" + `
String target = 'Technology';
List<Account> matches = [SELECT Id FROM Account WHERE Industry = :target];
` + "```" + `
### Relationship Queries
- Child-to-parent: dot through the relationship, ` + "`Contact.Account.Name`" + `
- Parent-to-child: a nested subquery in the SELECT list
**Every SOQL query counts against the 100-query governor limit per transaction.**
Query once, outside the loop, into a collection.`),
	},
	{
		Slug:        "dml",
		Title:       "DML Operations",
		Description: "Insert, update, upsert and delete, done in bulk.",
		Icon:        "pencil",
		Content:     dmlLesson,
	},
	{
		Slug:        "triggers",
		Title:       "Apex Triggers",
		Description: "Running logic when records change, without hitting limits.",
		Icon:        "zap",
		Content: lesson.Markdown(`# Apex Triggers
A trigger runs when records of one object are inserted, updated, deleted or undeleted. Triggers always receive records in batches of up to 200, so trigger code is bulk code by definition.
## Anatomy
` + "```apex" + `
trigger AccountTrigger on Account (before insert, before update) {
    for (Account acc : Trigger.new) {
        if (acc.Name == null) {
            acc.Name.addError('Name is required');
        }
    }
}
` + "```" + `
## Context Variables
- ` + "`Trigger.new`" + ` holds the new versions of the records
- ` + "`Trigger.old`" + ` holds the prior versions on update and delete
- ` + "`Trigger.isBefore`" + ` and ` + "`Trigger.isAfter`" + ` tell you the phase
### One Trigger Per Object
**Keep the trigger thin and delegate to a handler class.**
Two triggers on the same object have no guaranteed order, which is a bug you only find in production.`),
	},
	{
		Slug:        "testing",
		Title:       "Testing Apex",
		Description: "Test classes, assertions, and the 75% coverage gate.",
		Icon:        "check-circle",
		Content: lesson.Markdown(`# Testing Apex
Salesforce will not let you deploy without tests covering 75% of your code. Treat that as a floor, not a target.
## A Minimal Test Class
` + "```apex" + `
@IsTest
private class AccountServiceTest {
    @IsTest
    static void createsAccountWithDefaults() {
        Test.startTest();
        Account acc = AccountService.createDefault('Acme');
        Test.stopTest();
        Assert.areEqual('Acme', acc.Name);
    }
}
` + "```" + `
## What the Annotations Do
- ` + "`@IsTest`" + ` marks the class or method as test-only code
- ` + "`Test.startTest`" + ` and ` + "`Test.stopTest`" + ` reset governor limits around the code under test
- Test methods see no org data unless you ask for it
### Build Your Own Data
**Tests run against an empty database by default.**
Create the records each test needs in the test itself, or in a shared ` + "`@TestSetup`" + ` method.`),
	},
	{
		Slug:        "async-apex",
		Title:       "Asynchronous Apex",
		Description: "Future methods, Queueable, Batch and Scheduled Apex.",
		Icon:        "clock",
		Content: lesson.Markdown(`# Asynchronous Apex
When work is too big for one transaction, or must happen after a callout, Apex moves it to the async queue.
## The Four Flavors
- Future methods, fire-and-forget with primitive parameters only
- Queueable, like future but with objects, chaining, and a job Id
- Batch Apex, processes millions of records in chunks
- Scheduled Apex, runs on a cron expression
## Queueable Example
` + "```apex" + `
public class WarmCacheJob implements Queueable {
    public void execute(QueueableContext ctx) {
        // heavy lifting happens off the user's transaction
        CacheService.rebuild();
    }
}
` + "```" + `
Enqueue it with ` + "`System.enqueueJob(new WarmCacheJob())`" + ` and watch it in Apex Jobs.
**Async code gets fresh governor limits, but you cannot control exactly when it runs.**`),
	},
}

// dmlLesson is authored as a node tree so the bulk-DML sample can carry
// annotations under the code.
var dmlLesson = lesson.Prebuilt{
	lesson.Heading{Level: 1, Text: "DML Operations"},
	lesson.Paragraph{Spans: []lesson.Span{
		{Text: "DML statements write records back to the database: "},
		{Code: true, Text: "insert"},
		{Text: ", "},
		{Code: true, Text: "update"},
		{Text: ", "},
		{Code: true, Text: "upsert"},
		{Text: ", "},
		{Code: true, Text: "delete"},
		{Text: " and "},
		{Code: true, Text: "undelete"},
		{Text: "."},
	}},
	lesson.Heading{Level: 2, Text: "Bulk or Bust"},
	lesson.CodeBlock{
		Language: "apex",
		Source: `List<Account> accounts = new List<Account>();
for (Integer i = 0; i < 200; i++) {
    accounts.add(new Account(Name = 'Bulk ' + i));
}
insert accounts;`,
		Annotations: []lesson.Annotation{
			{Arrow: "└─▶", Icon: "✓", Severity: lesson.SeveritySuccess, Text: "One insert for 200 records: a single DML statement against the 150-statement limit."},
			{Arrow: "└─▶", Icon: "⚠", Severity: lesson.SeverityDanger, Text: "insert inside the loop would burn one statement per record and fail at record 151."},
			{Arrow: "└─▶", Icon: "💡", Severity: lesson.SeverityInfo, Text: "The same shape works for update, upsert and delete."},
		},
	},
	lesson.Heading{Level: 2, Text: "Partial Success"},
	lesson.Paragraph{Spans: []lesson.Span{
		{Text: "Plain "},
		{Code: true, Text: "insert"},
		{Text: " is all-or-nothing. "},
		{Code: true, Text: "Database.insert(records, false)"},
		{Text: " lets the valid records through and hands you a result per record."},
	}},
	lesson.CodeBlock{
		Language: "apex",
		Source: `Database.SaveResult[] results = Database.insert(accounts, false);
for (Database.SaveResult r : results) {
    if (!r.isSuccess()) {
        System.debug(r.getErrors()[0].getMessage());
    }
}`,
		Annotations: []lesson.Annotation{
			{Arrow: "└─▶", Icon: "💡", Severity: lesson.SeverityWarning, Text: "Check every SaveResult; silent partial failures are the hardest bugs to trace."},
		},
	},
	lesson.BoldParagraph{Text: "Never put DML inside a loop. Collect first, write once."},
}
