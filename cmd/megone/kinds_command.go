package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"megone/internal/report"
)

type kindInfo struct {
	input    string
	contacts string
	notes    string
}

var kindDetails = map[report.Kind]kindInfo{
	report.KindOne:         {input: "folder of PDFs", contacts: "yes", notes: "matches codes in filenames"},
	report.KindBilling:     {input: "statement PDF", contacts: "yes", notes: "overdue installment tiers"},
	report.KindRenewal:     {input: "base spreadsheet", contacts: "yes", notes: "drops expired contracts"},
	report.KindCertificate: {input: "base spreadsheet", contacts: "yes", notes: "expiry tiers, 14-digit tax ids"},
	report.KindTasks:       {input: "base spreadsheet", contacts: "no", notes: "use --period MM/YYYY"},
	report.KindAll:         {input: "origin spreadsheet", contacts: "yes", notes: "code, exact name, then fuzzy name"},
}

func newKindsCommand() *cobra.Command {
	title := cases.Title(language.Und)

	return &cobra.Command{
		Use:         "kinds",
		Short:       "List report kinds and the inputs each expects",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(kindDetails))
			for _, kind := range report.Kinds() {
				info := kindDetails[kind]
				display := title.String(strings.ToLower(strings.ReplaceAll(kind.String(), "_", " ")))
				rows = append(rows, []string{kind.String(), display, info.input, info.contacts, info.notes})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Kind", "Name", "Input", "Contacts", "Notes"},
				rows, nil,
			))
			return nil
		},
	}
}
