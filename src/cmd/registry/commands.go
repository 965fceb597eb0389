package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"personal/discord_entities/src/entities"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	familyChannel       = "channel"
	familyChannelField  = "channel-field"
	familyMessage       = "message"
	familyStickerFormat = "sticker-format"
	familyStickerType   = "sticker-type"
)

var families = []string{familyChannel, familyChannelField, familyMessage, familyStickerFormat, familyStickerType}

// table keeps column order for text output; JSON and YAML use one map per row.
type table struct {
	columns []string
	rows    [][]interface{}
}

func (t *table) add(values ...interface{}) { t.rows = append(t.rows, values) }

func (t *table) records() []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(t.rows))
	for _, r := range t.rows {
		rec := make(map[string]interface{}, len(t.columns))
		for i, col := range t.columns {
			rec[col] = r[i]
		}
		out = append(out, rec)
	}
	return out
}

func (t *table) write(w io.Writer, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t.records())
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t.records()); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.ToUpper(strings.Join(t.columns, "\t")))
		for _, r := range t.rows {
			cells := make([]string, len(r))
			for i, v := range r {
				if v == nil {
					cells[i] = "-"
				} else {
					cells[i] = fmt.Sprint(v)
				}
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func channelTable(types []entities.ChannelType) *table {
	t := &table{columns: []string{"name", "id", "sort_bucket", "guild", "audio", "message", "thread"}}
	for _, ct := range types {
		t.add(ct.String(), ct.ID(), ct.SortBucket(), ct.IsGuild(), ct.IsAudio(), ct.IsMessage(), ct.IsThread())
	}
	return t
}

func channelFieldTable(fields []entities.ChannelField) *table {
	t := &table{columns: []string{"name", "field", "audit_key"}}
	for _, f := range fields {
		var auditKey interface{}
		if key, ok := f.AuditLogKey(); ok {
			auditKey = key.Name()
		}
		t.add(f.Constant(), f.FieldName(), auditKey)
	}
	return t
}

func messageTable(types []entities.MessageType) *table {
	t := &table{columns: []string{"name", "id", "system", "deletable"}}
	for _, mt := range types {
		t.add(mt.String(), mt.ID(), mt.IsSystem(), mt.CanDelete())
	}
	return t
}

func stickerFormatTable(formats []entities.StickerFormat) *table {
	t := &table{columns: []string{"name", "id", "extension"}}
	for _, f := range formats {
		var ext interface{}
		if e, err := f.Extension(); err == nil {
			ext = e
		}
		t.add(f.String(), f.ID(), ext)
	}
	return t
}

func stickerTypeTable(types []entities.StickerType) *table {
	t := &table{columns: []string{"name", "id"}}
	for _, st := range types {
		t.add(st.String(), st.ID())
	}
	return t
}

func listFamily(family string) (*table, error) {
	switch family {
	case familyChannel:
		return channelTable(entities.ChannelTypes()), nil
	case familyChannelField:
		return channelFieldTable(entities.ChannelFields()), nil
	case familyMessage:
		return messageTable(entities.MessageTypes()), nil
	case familyStickerFormat:
		return stickerFormatTable(entities.StickerFormats()), nil
	case familyStickerType:
		return stickerTypeTable(entities.StickerTypes()), nil
	default:
		return nil, fmt.Errorf("unknown family %q (want one of %s)", family, strings.Join(families, ", "))
	}
}

func resolveFamily(family, raw string) (*table, error) {
	if family == familyChannelField {
		f, ok := entities.ChannelFieldFromName(raw)
		if !ok {
			return nil, fmt.Errorf("no channel field named %q", raw)
		}
		return channelFieldTable([]entities.ChannelField{f}), nil
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid wire id %q: %w", raw, err)
	}

	switch family {
	case familyChannel:
		return channelTable([]entities.ChannelType{entities.ChannelTypeFromID(id)}), nil
	case familyMessage:
		return messageTable([]entities.MessageType{entities.MessageTypeFromID(id)}), nil
	case familyStickerFormat:
		return stickerFormatTable([]entities.StickerFormat{entities.StickerFormatFromID(id)}), nil
	case familyStickerType:
		return stickerTypeTable([]entities.StickerType{entities.StickerTypeFromID(id)}), nil
	default:
		return nil, fmt.Errorf("unknown family %q (want one of %s)", family, strings.Join(families, ", "))
	}
}

func newRootCmd() *cobra.Command {
	var output string

	root := &cobra.Command{
		Use:           "registry",
		Short:         "Inspect the Discord channel, message and sticker kinds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")

	root.AddCommand(&cobra.Command{
		Use:       "list <family>",
		Short:     "List every kind in a family",
		Args:      cobra.ExactArgs(1),
		ValidArgs: families,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := listFamily(args[0])
			if err != nil {
				return err
			}
			return t.write(cmd.OutOrStdout(), output)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "resolve <family> <id>",
		Short: "Resolve a wire id (or a channel field name) to its kind",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolveFamily(args[0], args[1])
			if err != nil {
				return err
			}
			return t.write(cmd.OutOrStdout(), output)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "bucket <n>",
		Short: "List the channel kinds sharing a sort bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid bucket %q: %w", args[0], err)
			}
			return channelTable(entities.ChannelTypesInBucket(bucket).Sorted()).write(cmd.OutOrStdout(), output)
		},
	})

	return root
}
