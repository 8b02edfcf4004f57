package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/openlluna/website/internal/config"
	"github.com/openlluna/website/internal/entity"
	"github.com/openlluna/website/internal/infra/templates"
	"github.com/openlluna/website/internal/intake"
	"github.com/openlluna/website/internal/usecase"
)

type inquiryFlags struct {
	name    string
	email   string
	phone   string
	message string
}

func (f *inquiryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "submitter name")
	cmd.Flags().StringVar(&f.email, "email", "", "submitter email")
	cmd.Flags().StringVar(&f.phone, "phone", "", "submitter phone (optional)")
	cmd.Flags().StringVar(&f.message, "message", "", "inquiry message")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "inquiry",
		Short:        "Preview and submit contact inquiries",
		SilenceUsage: true,
	}
	root.AddCommand(newPreviewCmd(), newSendCmd())
	return root
}

func newPreviewCmd() *cobra.Command {
	var (
		flags inquiryFlags
		part  string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render both contact emails without sending them",
		Long: `Render the internal notification and the acknowledgement for an inquiry
using the site settings from the environment (.env is loaded when present).

Examples:
  inquiry preview --name Ada --email ada@example.com --message "Hello"
  inquiry preview --name Ada --email ada@example.com --message "Hello" --part html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			renderer, err := templates.NewRenderer(templates.Site{
				Name:       cfg.Site.Name,
				URL:        cfg.Site.URL,
				LogoURL:    cfg.Site.LogoURL,
				BrandColor: cfg.Site.BrandColor,
			})
			if err != nil {
				return err
			}

			uc := usecase.NewSubmitInquiryUseCase(nil, renderer, nil, usecase.Mailboxes{
				ContactTo:        cfg.Email.ContactTo,
				ContactFrom:      cfg.Email.ContactFrom,
				ClientFrom:       cfg.Email.ClientFrom,
				ReplyToSubmitter: cfg.Email.ReplyToSubmitter,
			}, nil)

			composed, err := uc.Compose(usecase.SubmitInquiryInput{
				Name:    flags.name,
				Email:   flags.email,
				Phone:   flags.phone,
				Message: flags.message,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printEmail(out, "notification", composed.Notification, part)
			printEmail(out, "acknowledgement", composed.Acknowledgement, part)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&part, "part", "text", "which body to print: text, html or all")
	return cmd
}

func printEmail(w io.Writer, label string, email entity.Email, part string) {
	fmt.Fprintf(w, "=== %s ===\nFrom: %s\nTo: %s\n", label, email.From, strings.Join(email.To, ", "))
	if email.ReplyTo != "" {
		fmt.Fprintf(w, "Reply-To: %s\n", email.ReplyTo)
	}
	fmt.Fprintf(w, "Subject: %s\n%s: %s\n\n", email.Subject, entity.HeaderEntityRefID, email.RefID())
	if part == "text" || part == "all" {
		fmt.Fprintln(w, email.Text)
	}
	if part == "html" || part == "all" {
		fmt.Fprintln(w, email.HTML)
	}
}

func newSendCmd() *cobra.Command {
	var (
		flags   inquiryFlags
		apiURL  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:     "send",
		Short:   "Submit an inquiry to a running API",
		Example: `  inquiry send --api http://localhost:8080 --name Ada --email ada@example.com --message "Hello"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			form := &intake.Form{
				Name:    flags.name,
				Email:   flags.email,
				Phone:   flags.phone,
				Message: flags.message,
			}

			modal, err := intake.NewSubmitter(apiURL).Submit(ctx, form)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", modal.Title, modal.Body)
			if !modal.OK() {
				return fmt.Errorf("inquiry not delivered")
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&apiURL, "api", "http://localhost:8080", "base URL of the API")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	return cmd
}
