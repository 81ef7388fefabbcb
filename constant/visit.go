package constant

type VisitOutcome string

const (
	VisitOutcomePending       VisitOutcome = "pending"
	VisitOutcomeProductsAdded VisitOutcome = "products_added"
	VisitOutcomeNoConsumption VisitOutcome = "no_consumption"
	VisitOutcomeDoNotDisturb  VisitOutcome = "do_not_disturb"
)

// Terminal reports whether the outcome closes a visit.
func (o VisitOutcome) Terminal() bool {
	switch o {
	case VisitOutcomeProductsAdded, VisitOutcomeNoConsumption, VisitOutcomeDoNotDisturb:
		return true
	}
	return false
}

type ActionType string

const (
	ActionReplace    ActionType = "replace"
	ActionExtraAdd   ActionType = "extra_add"
	ActionExtraReset ActionType = "extra_reset"
)

// DNDMaxAttempts caps do-not-disturb retries per room per day. Hitting the
// cap escalates the task through the delayed queue.
const DNDMaxAttempts = 3

type ProductStatus string

const (
	ProductStatusMissing  ProductStatus = "missing"
	ProductStatusFull     ProductStatus = "full"
	ProductStatusHasExtra ProductStatus = "has_extra"
)
