package main

import (
	"fmt"
	"os"

	infra "resume-builder/pkg/infrastructure"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all submissions to a dated JSON file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("out", "o", "", "output file (default is resume_database_export_<date>.json)")
	exportCmd.Flags().String("bucket", "", "also upload the export to this S3-compatible bucket (overrides export_bucket)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	exp, err := rt.Editor.ExportSubmissions()
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = exp.FileName
	}
	if err := os.WriteFile(out, exp.Body, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d submissions to %s\n", len(rt.Editor.Submissions()), out)

	bucket, _ := cmd.Flags().GetString("bucket")
	if bucket == "" {
		bucket = rt.Config.ExportBucket
	}
	if bucket == "" {
		return nil
	}
	uploader, err := infra.NewS3Exporter(ctx, infra.S3Config{
		Bucket:    bucket,
		Endpoint:  rt.Config.ExportEndpoint,
		Region:    rt.Config.ExportRegion,
		AccessKey: rt.Config.ExportAccessKey,
		SecretKey: rt.Config.ExportSecretKey,
	})
	if err != nil {
		return err
	}
	url, err := uploader.Upload(ctx, exp.FileName, exp.Body)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s\n", url)
	return nil
}
