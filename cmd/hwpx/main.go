// Command hwpx inspects and builds HWPX documents from the shell.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/hwpx/backend"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "hwpx",
		Short:        "Inspect and build HWPX documents",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging")

	cmd.AddCommand(infoCmd())
	cmd.AddCommand(textCmd())
	cmd.AddCommand(newCmd())
	cmd.AddCommand(replaceCmd())
	return cmd
}

// openEngine builds an engine honoring the HWPX_BACKEND environment
// variable, connects it, and opens the document at path.
func openEngine(path string) (backend.Engine, error) {
	eng, err := backend.New(os.Getenv("HWPX_BACKEND"))
	if err != nil {
		return nil, err
	}
	if err := eng.Connect(); err != nil {
		return nil, err
	}
	slog.Debug("engine ready", "backend", eng.Name())
	if err := eng.OpenDocument(path); err != nil {
		_ = eng.Disconnect()
		return nil, err
	}
	return eng, nil
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print document metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			eng, err := openEngine(args[0])
			if err != nil {
				return err
			}
			defer eng.Disconnect()

			info, err := eng.DocumentInfo()
			if err != nil {
				return err
			}
			fmt.Printf("File:     %s\n", info.Filename)
			fmt.Printf("Title:    %s\n", info.Title)
			fmt.Printf("Author:   %s\n", info.Author)
			fmt.Printf("Sections: %d\n", info.Sections)
			fmt.Printf("Backend:  %s\n", info.Backend)
			return nil
		},
	}
}

func textCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text FILE",
		Short: "Print the document text",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			eng, err := openEngine(args[0])
			if err != nil {
				return err
			}
			defer eng.Disconnect()

			text, err := eng.GetText()
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
}

func newCmd() *cobra.Command {
	var title string
	var text string

	c := &cobra.Command{
		Use:   "new FILE",
		Short: "Create a new HWPX document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			eng, err := backend.New(os.Getenv("HWPX_BACKEND"))
			if err != nil {
				return err
			}
			if err := eng.Connect(); err != nil {
				return err
			}
			defer eng.Disconnect()

			if err := eng.CreateDocument(); err != nil {
				return err
			}
			if title != "" {
				if h, ok := eng.(*backend.HWPX); ok {
					h.Document().Metadata.Title = title
				}
			}
			for i, para := range strings.Split(text, "\n") {
				if i > 0 {
					if err := eng.InsertParagraph(); err != nil {
						return err
					}
				}
				if para == "" {
					continue
				}
				if err := eng.InsertText(para); err != nil {
					return err
				}
			}
			return eng.SaveDocumentAs(args[0], "HWPX")
		},
	}

	c.Flags().StringVarP(&title, "title", "t", "", "Document title")
	c.Flags().StringVar(&text, "text", "", "Initial text; newlines start paragraphs")
	return c
}

func replaceCmd() *cobra.Command {
	var all bool

	c := &cobra.Command{
		Use:   "replace FILE OLD NEW",
		Short: "Replace text and save in place",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			eng, err := openEngine(args[0])
			if err != nil {
				return err
			}
			defer eng.Disconnect()

			n, err := eng.ReplaceText(args[1], args[2], all)
			if err != nil {
				return err
			}
			slog.Debug("replaced", "count", n)
			if n == 0 {
				fmt.Println("no matches")
				return nil
			}
			if err := eng.SaveDocument(); err != nil {
				return err
			}
			fmt.Printf("replaced %d occurrence(s)\n", n)
			return nil
		},
	}

	c.Flags().BoolVar(&all, "all", true, "replace every occurrence")
	return c
}
