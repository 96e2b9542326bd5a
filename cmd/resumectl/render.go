package main

import (
	"fmt"
	"os"
	"strings"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <draft.json>",
	Short: "Render a resume document to HTML or PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("template", "t", "", "layout to use: standard, technology, business or creative (default is the document's own)")
	renderCmd.Flags().StringP("out", "o", "", "output file (default is stdout for HTML, resume.pdf for PDF)")
	renderCmd.Flags().Bool("pdf", false, "print to an A4 PDF through headless Chrome")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	resume, err := model.ValidateResume(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if t, _ := cmd.Flags().GetString("template"); t != "" {
		resume.Template = model.ParseTemplateKind(t)
	}
	out, _ := cmd.Flags().GetString("out")
	asPDF, _ := cmd.Flags().GetBool("pdf")

	cfg, _, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	layouts, err := render.NewRenderer()
	if err != nil {
		return err
	}
	docs := usecase.NewDocuments(layouts, infra.NewChromedpRenderer(cfg.ChromePath, cfg.PDFTimeout()))

	if asPDF {
		b, err := docs.PDF(ctx, resume)
		if err != nil {
			return err
		}
		if out == "" {
			out = "resume.pdf"
		}
		if err := os.WriteFile(out, b, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
		return nil
	}

	doc, err := docs.HTML(resume)
	if err != nil {
		return err
	}
	if out == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), doc.HTML)
		return err
	}
	if !strings.HasSuffix(out, ".html") {
		out += ".html"
	}
	return os.WriteFile(out, []byte(doc.HTML), 0o644)
}
