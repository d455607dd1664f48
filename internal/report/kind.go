// Package report selects, runs, and assembles the reconciliation
// pipelines. Each report kind binds one extractor, one lookup strategy,
// and one output layout.
package report

import "fmt"

// Kind selects one reconciliation pipeline. The set is closed.
type Kind int

const (
	// KindOne matches client codes in PDF filenames against the directory.
	KindOne Kind = iota
	// KindBilling extracts overdue installments from a statement PDF.
	KindBilling
	// KindRenewal lists contracts that have not yet expired.
	KindRenewal
	// KindCertificate lists digital certificates nearing expiry.
	KindCertificate
	// KindTasks derives save-as jobs for the monthly task batch.
	KindTasks
	// KindAll reconciles an arbitrary origin table against the directory.
	KindAll
)

var kindTokens = map[Kind]string{
	KindOne:         "ONE",
	KindBilling:     "Cobranca",
	KindRenewal:     "ProrContrato",
	KindCertificate: "ComuniCertificado",
	KindTasks:       "DomBot_GMS",
	KindAll:         "ALL",
}

// Kinds returns every report kind in presentation order.
func Kinds() []Kind {
	return []Kind{KindOne, KindBilling, KindRenewal, KindCertificate, KindTasks, KindAll}
}

// ParseKind resolves a selector token to its kind. Matching is exact on
// the canonical tokens, the same spelling the operators have always used.
func ParseKind(token string) (Kind, error) {
	for kind, name := range kindTokens {
		if name == token {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown report kind %q", token)
}

// String returns the canonical selector token.
func (k Kind) String() string {
	if name, ok := kindTokens[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// NeedsContacts reports whether the pipeline consults the contact
// directory. The task-aggregation report never does.
func (k Kind) NeedsContacts() bool { return k != KindTasks }
