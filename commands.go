package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confstore/confstore/lib/store"
	"github.com/confstore/confstore/lib/util"
)

type cliFlags struct {
	namespace   string
	global      bool
	configPath  string
	keepCorrupt bool
}

func (f *cliFlags) open() *store.Store {
	var opts []store.Option
	if f.global {
		opts = append(opts, store.WithGlobalConfigPath())
	}
	if f.configPath != "" {
		opts = append(opts, store.WithConfigPath(f.configPath))
	}
	if f.keepCorrupt {
		opts = append(opts, store.WithKeepCorrupt())
	}
	return store.New(f.namespace, opts...)
}

func newRootCommand() *cobra.Command {
	flags := &cliFlags{}
	root := &cobra.Command{
		Use:           "confstore",
		Short:         "Inspect and edit namespaced JSON config files",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&flags.namespace, "namespace", "n", "confstore", "namespace owning the config file")
	pf.BoolVar(&flags.global, "global", false, "resolve against the system-wide config root")
	pf.StringVar(&flags.configPath, "config-path", "", "explicit config file path overriding namespace resolution")
	pf.BoolVar(&flags.keepCorrupt, "keep-corrupt", false, "fail on malformed config instead of clearing it")
	root.AddCommand(
		newGetCommand(flags),
		newSetCommand(flags),
		newDelCommand(flags),
		newClearCommand(flags),
		newPathCommand(flags),
		newListCommand(flags),
	)
	return root
}

func newGetCommand(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value at a dot-separated key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := flags.open().Get(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
}

func newSetCommand(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Assign a value at a dot-separated key",
		Long:  "Assign a value at a dot-separated key. VALUE is parsed as JSON; anything that is not valid JSON is stored as a plain string.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value any
			if err := json.Unmarshal([]byte(args[1]), &value); err != nil {
				value = args[1]
			}
			return flags.open().Set(args[0], value)
		},
	}
}

func newDelCommand(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "del KEY",
		Short: "Remove a dot-separated key and its subtree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.open().Delete(args[0])
		},
	}
}

func newClearCommand(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.open().Clear()
		},
	}
}

func newPathCommand(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := flags.open().Path()
			if !util.CheckFileExists(p) {
				log.WithField("path", p).Debug("config file does not exist yet")
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func newListCommand(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the full document as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := flags.open().All()
			if err != nil {
				return err
			}
			return printJSON(cmd, doc)
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return nil
}
