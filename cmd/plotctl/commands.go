package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"plotsite/internal/adapter/http/dto/response"
	"plotsite/internal/adapter/http/routes"
	"plotsite/internal/infrastructure/bootstrap"
	"plotsite/internal/infrastructure/config"
	"plotsite/internal/usecase"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "plotctl",
		Short:         "Plot catalog and site-plan tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCatalogCmd(), newLayoutCmd(), newRenderCmd(), newLeadsCmd(), newServeCmd())
	return root
}

func loadCatalog(ctx context.Context) (*bootstrap.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return bootstrap.NewCatalog(ctx, cfg)
}

func newCatalogCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List plots with their effective status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			parcels, err := c.Catalog.GetAllParcels(cmd.Context())
			if err != nil {
				return err
			}
			out := response.FromParcels(parcels)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return writeCatalogTable(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func writeCatalogTable(w io.Writer, parcels []response.ParcelResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLOT\tSIZE\tSQ FT\tSTATUS")
	for _, p := range parcels {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", p.ID, p.Caption, p.Area, p.Status)
	}
	return tw.Flush()
}

func newLayoutCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the computed shapes of a rendering mode as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			l, err := c.Layout.Compute(cmd.Context(), mode)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), l)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "grid", "Rendering mode (grid, topdown, perspective, canvas, precision)")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var (
		mode, format, out string
		selected          int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a site plan as SVG or PNG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			var sel *int
			if selected > 0 {
				sel = &selected
			}
			img, err := c.Layout.Render(cmd.Context(), mode, usecase.RenderFormat(format), sel)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(img.Body)
				return err
			}
			if err := os.WriteFile(out, img.Body, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s, %d bytes)\n", out, img.ContentType, len(img.Body))
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "grid", "Rendering mode")
	cmd.Flags().StringVar(&format, "format", "svg", "Output format (svg, png)")
	cmd.Flags().IntVar(&selected, "selected", 0, "Plot number to highlight")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func newLeadsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "List recent inquiries from the local SQLite store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.InquiryStore != config.InquiryStoreSQLite {
				return fmt.Errorf("leads needs INQUIRY_STORE=sqlite, got %q", cfg.InquiryStore)
			}
			cfg.NotifierMock = true
			c, err := bootstrap.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			leads, err := c.Leads.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CREATED\tNAME\tPHONE\tPLOT\tEMAIL")
			for _, l := range leads {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					l.CreatedAt.Format(time.RFC3339), l.Name, l.Phone, l.PlotNumber(), strings.TrimSpace(l.Email))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum rows")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Run: func(*cobra.Command, []string) {
			routes.Run()
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
