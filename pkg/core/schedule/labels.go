package schedule

// Unassigned is the placeholder value every assignment starts and resets to.
const Unassigned = "Set"

// TimeOffLabel is the value forced onto dates covered by approved leave.
const TimeOffLabel = "TIME OFF"

// FrontDeskVariant is one of the three Front Desk shift categories. Each
// variant has two concrete staggered start times sharing the category.
type FrontDeskVariant string

const (
	FrontDeskAM    FrontDeskVariant = "AM"
	FrontDeskPM    FrontDeskVariant = "PM"
	FrontDeskAudit FrontDeskVariant = "Audit"
)

// FrontDeskVariants lists the variants in their fixed assignment order.
var FrontDeskVariants = []FrontDeskVariant{FrontDeskAM, FrontDeskPM, FrontDeskAudit}

var frontDeskStaggers = map[FrontDeskVariant][2]string{
	FrontDeskAM:    {"AM (6:00AM–2:00PM)", "AM (6:15AM–2:15PM)"},
	FrontDeskPM:    {"PM (2:00PM–10:00PM)", "PM (2:15PM–10:15PM)"},
	FrontDeskAudit: {"Audit (10:00PM–6:00AM)", "Audit (10:15PM–6:15AM)"},
}

// EarlyLabel returns the concrete label for the earlier stagger.
func (v FrontDeskVariant) EarlyLabel() string { return frontDeskStaggers[v][0] }

// LateLabel returns the concrete label for the later stagger.
func (v FrontDeskVariant) LateLabel() string { return frontDeskStaggers[v][1] }

// Token returns the collapsed availability/preference token for the variant.
func (v FrontDeskVariant) Token() string { return string(v) }

var frontDeskVariantByLabel = map[string]FrontDeskVariant{}

// ShuttleVariant is one of the four fixed shuttle shift categories.
type ShuttleVariant string

const (
	ShuttleAM     ShuttleVariant = "AM"
	ShuttleMidday ShuttleVariant = "Midday"
	ShuttlePM     ShuttleVariant = "PM"
	ShuttleCrew   ShuttleVariant = "Crew"
)

// ShuttleVariants lists the variants in their fixed assignment order.
var ShuttleVariants = []ShuttleVariant{ShuttleAM, ShuttleMidday, ShuttlePM, ShuttleCrew}

var shuttleLabels = map[ShuttleVariant]string{
	ShuttleAM:     "AM (3:30AM–11:30AM)",
	ShuttleMidday: "Midday (10:30AM–6:30PM)",
	ShuttlePM:     "PM (5:30PM–1:30AM)",
	ShuttleCrew:   "Crew (5:45PM–1:45AM)",
}

// Label returns the concrete shift label for the variant.
func (v ShuttleVariant) Label() string { return shuttleLabels[v] }

var shuttleVariantByLabel = map[string]ShuttleVariant{}

// BreakfastBarLabels lists the morning food-service shifts in their fixed
// assignment order. Breakfast Bar has no variant/stagger structure; the
// labels are used literally.
var BreakfastBarLabels = []string{"5AM–12PM", "6AM–12PM", "7AM–12PM"}

var breakfastBarLabelSet = map[string]bool{}

func init() {
	for v, pair := range frontDeskStaggers {
		frontDeskVariantByLabel[pair[0]] = v
		frontDeskVariantByLabel[pair[1]] = v
	}
	for v, label := range shuttleLabels {
		shuttleVariantByLabel[label] = v
	}
	for _, label := range BreakfastBarLabels {
		breakfastBarLabelSet[label] = true
	}
}

// FrontDeskVariantOf resolves a concrete Front Desk label, or a bare variant
// token, to its variant. ok is false for anything else.
func FrontDeskVariantOf(label string) (FrontDeskVariant, bool) {
	if v, ok := frontDeskVariantByLabel[label]; ok {
		return v, true
	}
	switch FrontDeskVariant(label) {
	case FrontDeskAM, FrontDeskPM, FrontDeskAudit:
		return FrontDeskVariant(label), true
	}
	return "", false
}

// ShuttleVariantOf resolves a concrete shuttle label to its variant.
func ShuttleVariantOf(label string) (ShuttleVariant, bool) {
	v, ok := shuttleVariantByLabel[label]
	return v, ok
}

// IsBreakfastBarLabel reports whether the value is a Breakfast Bar shift.
func IsBreakfastBarLabel(label string) bool {
	return breakfastBarLabelSet[label]
}

// DepartmentLabels returns every concrete shift label of a department.
func DepartmentLabels(dept Department) []string {
	switch dept {
	case FrontDesk:
		labels := make([]string, 0, len(FrontDeskVariants)*2)
		for _, v := range FrontDeskVariants {
			labels = append(labels, v.EarlyLabel(), v.LateLabel())
		}
		return labels
	case BreakfastBar:
		return append([]string(nil), BreakfastBarLabels...)
	case Shuttle:
		labels := make([]string, 0, len(ShuttleVariants))
		for _, v := range ShuttleVariants {
			labels = append(labels, v.Label())
		}
		return labels
	}
	return nil
}

// HoldsDepartmentShift reports whether the value is one of the department's
// concrete shift labels.
func HoldsDepartmentShift(dept Department, value string) bool {
	switch dept {
	case FrontDesk:
		_, ok := frontDeskVariantByLabel[value]
		return ok
	case BreakfastBar:
		return breakfastBarLabelSet[value]
	case Shuttle:
		_, ok := shuttleVariantByLabel[value]
		return ok
	}
	return false
}

// NormalizeToken maps a concrete label or token to the token used by
// availability entries and shift preferences: the collapsed variant for
// Front Desk, the literal label for other departments.
func NormalizeToken(dept Department, label string) string {
	if dept == FrontDesk {
		if v, ok := FrontDeskVariantOf(label); ok {
			return v.Token()
		}
	}
	return label
}
