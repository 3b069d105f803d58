package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gouthamgo/apex-academy/internal/curriculum"
	"github.com/gouthamgo/apex-academy/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static curriculum site",
	Long: `The build command renders every curriculum topic, any auxiliary
Markdown pages under './content/', and static assets into the
configured output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild()
	},
}

func runBuild() error {
	builder := &site.Builder{
		Config: appConfig,
		Meta:   siteMeta,
		Topics: curriculum.Topics(),
	}
	return builder.Build()
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
