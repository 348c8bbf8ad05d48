package main

import (
	"fmt"
	"strconv"

	"fourcc/cmd/fourcc/ui"
	"fourcc/internal/fourcc"
	"fourcc/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errMissingCode = &fourcc.Error{Kind: fourcc.MissingArgument, Reason: "expected one 4-character code"}

// newEncodeCmd converts a FourCC back into its integer.
func (a *app) newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <code>",
		Short: "Encode a 4-character code into its little-endian integer",
		Long: `Prints the decimal integer whose little-endian bytes spell <code>.

The argument must be exactly 4 bytes; quote codes with spaces ("fmt ").`,
		Args: oneValue(errMissingCode),
		RunE: a.runEncode,
	}
}

func (a *app) runEncode(cmd *cobra.Command, args []string) error {
	log := a.log.Get(logging.CategoryEncode)

	v, err := fourcc.EncodeString(args[0])
	if err != nil {
		log.Debug("rejected code", zap.String("input", args[0]), zap.Stringer("kind", fourcc.KindOf(err)))
		return err
	}
	log.Debug("encoded", zap.String("code", strconv.Quote(args[0])), zap.Uint32("value", v))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
	return err
}

// newDescribeCmd prints a byte-by-byte breakdown of a value.
func (a *app) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <decimal-integer>",
		Short: "Show the bytes of a value and any known name for its code",
		Args:  oneValue(fourcc.ErrMissingArgument),
		RunE:  a.runDescribe,
	}
}

func (a *app) runDescribe(cmd *cobra.Command, args []string) error {
	code, err := fourcc.DecodeString(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, describe(code, a.registry, a.styles))

	entry, ok := a.registry.Lookup(code)
	a.log.Get(logging.CategoryRegistry).Debug("lookup",
		zap.String("code", code.Format(fourcc.FormatQuoted)),
		zap.Bool("known", ok),
		zap.String("name", entry.Name),
	)
	return nil
}

// describe renders the breakdown table and summary lines for code.
func describe(code fourcc.Code, registry *fourcc.Registry, styles ui.Styles) string {
	table := ui.NewSimpleTable("Bytes (little-endian)", []string{"Index", "Hex", "Dec", "Char"}).AlignRight(0, 1, 2)
	for i, b := range code {
		table.AddRow(strconv.Itoa(i), fmt.Sprintf("0x%02x", b), strconv.Itoa(int(b)), fourcc.ByteLabel(b))
	}

	s := table.View(styles)
	s += fmt.Sprintf("Value: %d (0x%08x)\n", code.Uint32(), code.Uint32())
	s += fmt.Sprintf("Code:  %s\n", code.Format(fourcc.FormatQuoted))
	if entry, ok := registry.Lookup(code); ok {
		s += fmt.Sprintf("Known: %s (%s)\n", entry.Name, entry.Family)
	} else {
		s += styles.Muted.Render("Known: -") + "\n"
	}
	if !code.Printable() {
		s += styles.Warn.Render("note: contains non-printable bytes") + "\n"
	}
	return s
}

// newKnownCmd lists the registry.
func (a *app) newKnownCmd() *cobra.Command {
	var family string
	cmd := &cobra.Command{
		Use:   "known",
		Short: "List well-known codes and their values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := ui.NewSimpleTable("Known codes", []string{"Code", "Value", "Hex", "Name", "Family"}).AlignRight(1, 2)
			for _, e := range a.registry.Entries() {
				if family != "" && string(e.Family) != family {
					continue
				}
				v := e.Code.Uint32()
				table.AddRow(e.Code.Format(fourcc.FormatQuoted), strconv.FormatUint(uint64(v), 10), fmt.Sprintf("0x%08x", v), e.Name, string(e.Family))
			}
			if len(table.Rows) == 0 {
				return fmt.Errorf("no known codes in family %q", family)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), table.View(a.styles))
			return err
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "Only list one family: drm, video, riff or user")
	return cmd
}
