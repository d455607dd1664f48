package report

import (
	"fmt"
	"regexp"
	"strings"

	"megone/internal/classify"
	"megone/internal/contacts"
	"megone/internal/extract"
	"megone/internal/normalize"
	"megone/internal/tabular"
)

func text(s string) tabular.Cell     { return tabular.TextCell(s) }
func number(v float64) tabular.Cell  { return tabular.NumberCell(v) }
func tierCell(tier int) tabular.Cell { return tabular.NumberCell(float64(tier)) }

// assembleOne matches client codes embedded in PDF filenames against the
// directory. Every matched filename yields a row; codes without a contact
// still appear, with blank contact columns.
func (r *Runner) assembleOne(req Request, dir *contacts.Directory) (*tabular.Table, error) {
	names, err := r.docs.ListFilenames(req.Input)
	if err != nil {
		return nil, fmt.Errorf("list documents %s: %w", req.Input, err)
	}
	r.log.Log(fmt.Sprintf("Found %d PDF files", len(names)))

	out := &tabular.Table{Header: []string{"Código", "Empresa", "Contato Onvio", "Grupo Onvio", "Caminho"}}
	for _, candidate := range extract.Filenames(req.Input, names) {
		r.log.Log(fmt.Sprintf("Code found: %s - %s", candidate.Code, candidate.Path))
		row := tabular.Row{text(candidate.Code), text(""), text(""), text(""), text(candidate.Path)}
		if contact := dir.ByCode(normalize.IdentifierText(candidate.Code)); contact != nil {
			row[1] = text(contact.Name)
			row[2] = text(contact.Individual)
			row[3] = text(contact.Group)
			r.log.Log(fmt.Sprintf("Match found for code %s", candidate.Code))
		} else {
			r.log.Log(fmt.Sprintf("Code %s not found in contacts", candidate.Code))
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// assembleBilling extracts installments from the statement PDF, resolves
// each client, and attaches the reminder-letter tier for how overdue the
// installment is.
func (r *Runner) assembleBilling(req Request, dir *contacts.Directory) (*tabular.Table, error) {
	r.log.Log("Reading PDF file...")
	content, err := r.docs.DocumentText(req.Input)
	if err != nil {
		return nil, fmt.Errorf("extract text %s: %w", req.Input, err)
	}

	r.log.Log("Extracting installments from PDF...")
	today := r.now()
	out := &tabular.Table{Header: []string{
		"Código", "Empresa", "Contato Onvio", "Grupo Onvio",
		"Valor da Parcela", "Data de Vencimento", "Carta de Aviso",
	}}
	for _, parcel := range extract.Parcels(content) {
		individual, group := "", ""
		if contact := dir.ByCode(parcel.Code); contact != nil {
			individual = contact.Individual
			group = contact.Group
		}
		tier := classify.Billing(parcel.Due, today)
		out.Rows = append(out.Rows, tabular.Row{
			text(parcel.Code), text(parcel.Name), text(individual), text(group),
			number(parcel.Amount), text(parcel.Due.Format("02/01/2006")), tierCell(tier),
		})
	}
	return out, nil
}

// assembleRenewals lists contracts still in force, joined with the
// contact columns for the renewal notice.
func (r *Runner) assembleRenewals(req Request, dir *contacts.Directory) (*tabular.Table, error) {
	r.log.Log("Reading base spreadsheet...")
	base, err := r.tables.ReadTable(req.Input)
	if err != nil {
		return nil, fmt.Errorf("read base %s: %w", req.Input, err)
	}
	if err := requireWidth(base, req.Kind, 3); err != nil {
		return nil, err
	}

	out := &tabular.Table{Header: []string{"Codigo", "Contato Onvio", "Grupo Onvio", "Nome", "Vencimento"}}
	for _, renewal := range extract.Renewals(base, r.now()) {
		individual, group := "", ""
		if contact := dir.ByCode(renewal.Code); contact != nil {
			individual = contact.Individual
			group = contact.Group
		}
		out.Rows = append(out.Rows, tabular.Row{
			text(renewal.Code), text(individual), text(group),
			text(renewal.Person), text(renewal.Due.Format("02/01/2006")),
		})
	}
	return out, nil
}

// assembleCertificates lists certificates with a tax id on file, joined
// with contacts and tiered by how close expiry is.
func (r *Runner) assembleCertificates(req Request, dir *contacts.Directory) (*tabular.Table, error) {
	r.log.Log("Reading base spreadsheet...")
	base, err := r.tables.ReadTable(req.Input)
	if err != nil {
		return nil, fmt.Errorf("read base %s: %w", req.Input, err)
	}
	if err := requireWidth(base, req.Kind, 8); err != nil {
		return nil, err
	}

	today := r.now()
	out := &tabular.Table{Header: []string{
		"Codigo", "Empresa", "Contato Onvio", "Grupo Onvio", "CNPJ", "Vencimento", "Carta de Aviso",
	}}
	for _, cert := range extract.Certificates(base) {
		individual, group := "", ""
		if contact := dir.ByCode(cert.Code); contact != nil {
			individual = contact.Individual
			group = contact.Group
		}
		tier := classify.Certificate(cert.Due, today)
		out.Rows = append(out.Rows, tabular.Row{
			text(cert.Code), text(cert.Company), text(individual), text(group),
			text(cert.TaxID), text(cert.Due.Format("02/01/2006")), tierCell(tier),
		})
	}
	return out, nil
}

var periodPattern = regexp.MustCompile(`^(\d{2})/(\d{4})$`)

// assembleTasks derives the monthly save-as batch. The period comes from
// the request when supplied, otherwise from the current month; an invalid
// explicit period is fatal.
func (r *Runner) assembleTasks(req Request) (*tabular.Table, error) {
	r.log.Log("Reading base spreadsheet...")
	base, err := r.tables.ReadTable(req.Input)
	if err != nil {
		return nil, fmt.Errorf("read base %s: %w", req.Input, err)
	}
	if err := requireWidth(base, req.Kind, 2); err != nil {
		return nil, err
	}

	period, competence := "", ""
	if trimmed := strings.TrimSpace(req.Period); trimmed != "" {
		match := periodPattern.FindStringSubmatch(trimmed)
		if match == nil {
			return nil, wrapFatal(ErrPeriodFormat, req.Kind,
				fmt.Sprintf("period %q is not MM/YYYY", req.Period))
		}
		period = trimmed
		competence = match[1] + match[2]
		r.log.Log(fmt.Sprintf("Using supplied period: %s", period))
	} else {
		now := r.now()
		period = now.Format("01/2006")
		competence = now.Format("012006")
		r.log.Log("Using current period (fallback)")
	}

	tasks := extract.Tasks(base, period, competence, r.tasksDir, r.tasksExt)
	r.log.Log(fmt.Sprintf("Unique records found: %d", len(tasks)))

	out := &tabular.Table{Header: []string{"Nº", "EMPRESAS", "Periodo", "Salvar Como", "Competencia", "Caminho"}}
	for _, task := range tasks {
		out.Rows = append(out.Rows, tabular.Row{
			text(task.Code), text(task.Company), text(task.Period),
			text(task.SaveAs), text(task.Competence), text(task.Path),
		})
	}
	return out, nil
}

// assembleAll reconciles every origin row against the directory through
// the full lookup ladder: code on column A, exact name on A then B, fuzzy
// name on A then B. Matched rows echo the contact's own fields under the
// contact table's header names; unmatched rows keep their original values
// with blank contact columns.
func (r *Runner) assembleAll(req Request, dir *contacts.Directory, contactHeader []string) (*tabular.Table, error) {
	r.log.Log("Reading origin spreadsheet...")
	origin, err := r.tables.ReadTable(req.Input)
	if err != nil {
		return nil, fmt.Errorf("read origin %s: %w", req.Input, err)
	}
	if err := requireWidth(origin, req.Kind, 1); err != nil {
		return nil, err
	}
	r.log.Log(fmt.Sprintf("Origin records: %d", len(origin.Rows)))

	var byCode, byExactName, bySimilarity, unmatched int

	out := &tabular.Table{Header: contactHeader[:4]}
	for _, row := range origin.Rows {
		valueA := row.At(0)
		valueB := row.At(1)

		code := normalize.Identifier(valueA)
		nameA := normalize.Name(valueA)
		nameB := normalize.Name(valueB)

		var contact *contacts.Contact
		switch {
		case dir.ByCode(code) != nil:
			contact = dir.ByCode(code)
			byCode++
		case dir.ByName(nameA) != nil:
			contact = dir.ByName(nameA)
			byExactName++
		case dir.ByName(nameB) != nil:
			contact = dir.ByName(nameB)
			byExactName++
		}
		if contact == nil && nameA != "" {
			if found, score := dir.Closest(nameA, r.threshold); found != nil {
				contact = found
				bySimilarity++
				r.log.Log(fmt.Sprintf("Similarity %.0f%%: %q -> %q", score*100, valueA.String(), found.Name))
			}
		}
		if contact == nil && nameB != "" {
			if found, score := dir.Closest(nameB, r.threshold); found != nil {
				contact = found
				bySimilarity++
				r.log.Log(fmt.Sprintf("Similarity %.0f%%: %q -> %q", score*100, valueB.String(), found.Name))
			}
		}

		if contact != nil {
			out.Rows = append(out.Rows, tabular.Row{
				contact.RawCode, text(contact.Name), text(contact.Individual), text(contact.Group),
			})
			continue
		}
		unmatched++
		second := valueB
		if second.IsEmpty() {
			second = valueA
		}
		out.Rows = append(out.Rows, tabular.Row{valueA, second, text(""), text("")})
	}

	r.log.Log(fmt.Sprintf("Matches by code: %d", byCode))
	r.log.Log(fmt.Sprintf("Matches by exact name: %d", byExactName))
	r.log.Log(fmt.Sprintf("Matches by similarity (>=%.0f%%): %d", r.threshold*100, bySimilarity))
	r.log.Log(fmt.Sprintf("Unmatched (blank contact columns): %d", unmatched))
	return out, nil
}
