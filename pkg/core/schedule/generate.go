package schedule

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// HorizonWeeks is the number of consecutive weeks a generation run covers.
const HorizonWeeks = 4

// GenerationConfig is the full input to a generation run. Assignments must be
// pre-materialized for every employee and date in the horizon; generation
// mutates their values in place and never creates or deletes rows.
type GenerationConfig struct {
	Employees    []Employee
	Availability []AvailabilityEntry
	TimeOff      []TimeOff

	// Assignments covers employees x dates for the whole horizon
	Assignments []*Assignment

	// BaseWeek is the anchor date of the first week
	BaseWeek time.Time

	// Weeks overrides the horizon length; zero means HorizonWeeks
	Weeks int

	// WeeklyCaps overrides the default per-department weekly caps.
	// Departments absent from the map are uncapped.
	WeeklyCaps map[Department]int

	Logger *zap.Logger
}

// GenerationOutcome is the result of a run: the mutated roster plus the
// per-week coverage and conflict reports computed over the final state.
type GenerationOutcome struct {
	Roster      *Roster
	WeekAnchors []time.Time
	Coverage    []*WeekCoverage
	Conflicts   []WeekConflicts
}

// DefaultWeeklyCaps returns the built-in department caps: Front Desk 5,
// Shuttle 4, Breakfast Bar uncapped.
func DefaultWeeklyCaps() map[Department]int {
	return map[Department]int{
		FrontDesk: DefaultFrontDeskCap,
		Shuttle:   DefaultShuttleCap,
	}
}

type generator struct {
	cfg    GenerationConfig
	roster *Roster
	avail  *AvailabilityIndex
	logger *zap.Logger

	// capable employee lists per department, in stable input order
	capable map[Department][]Employee

	timeOffByName map[string][]TimeOff

	// per-week state, reset at each week boundary
	el         *eligibility
	counts     map[string]int
	lastTokens map[lastTokenKey]string
}

// Generate runs the single-pass greedy scheduler over the horizon: for each
// week, the Front Desk pass, the reservation step, then the Breakfast Bar and
// Shuttle passes, finishing with the approved time-off sync. Slots with no
// eligible candidate are left on the placeholder; that is the expected
// outcome for insufficient staff and is surfaced by the coverage report.
func Generate(cfg GenerationConfig) (*GenerationOutcome, error) {
	if cfg.BaseWeek.IsZero() {
		return nil, fmt.Errorf("generation requires a base week anchor")
	}
	if cfg.Weeks == 0 {
		cfg.Weeks = HorizonWeeks
	}
	if cfg.Weeks < 0 {
		return nil, fmt.Errorf("invalid week count %d", cfg.Weeks)
	}
	if cfg.WeeklyCaps == nil {
		cfg.WeeklyCaps = DefaultWeeklyCaps()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	g := &generator{
		cfg:     cfg,
		roster:  NewRoster(cfg.Assignments),
		avail:   BuildAvailabilityIndex(cfg.Availability),
		logger:  cfg.Logger,
		capable: make(map[Department][]Employee),
	}
	for _, dept := range Departments {
		for _, emp := range cfg.Employees {
			if emp.CanWork(dept) {
				g.capable[dept] = append(g.capable[dept], emp)
			}
		}
	}
	g.timeOffByName = make(map[string][]TimeOff)
	for _, t := range cfg.TimeOff {
		g.timeOffByName[t.Name] = append(g.timeOffByName[t.Name], t)
	}

	outcome := &GenerationOutcome{Roster: g.roster}
	for w := 0; w < cfg.Weeks; w++ {
		anchor := Midnight(cfg.BaseWeek).AddDate(0, 0, 7*w)
		outcome.WeekAnchors = append(outcome.WeekAnchors, anchor)
		g.generateWeek(anchor)
	}
	for _, anchor := range outcome.WeekAnchors {
		outcome.Coverage = append(outcome.Coverage, AnalyzeCoverage(g.roster, anchor))
		outcome.Conflicts = append(outcome.Conflicts, DetectConflicts(g.roster, cfg.Employees, anchor))
	}
	return outcome, nil
}

func (g *generator) generateWeek(anchor time.Time) {
	g.logger.Info("generating week", zap.String("anchor", DateKey(anchor)))

	g.roster.ResetWeek(anchor)
	g.counts = make(map[string]int)
	g.lastTokens = make(map[lastTokenKey]string)
	g.el = &eligibility{
		roster:  g.roster,
		avail:   g.avail,
		timeOff: g.timeOffByName,
		counts:  g.counts,
		caps:    g.cfg.WeeklyCaps,
	}

	g.frontDeskPass(anchor)
	reserved, fdShort := g.reserveForFrontDesk(anchor)
	g.singlePickPass(anchor, BreakfastBar, BreakfastBarLabels, reserved, fdShort)
	g.singlePickPass(anchor, Shuttle, DepartmentLabels(Shuttle), reserved, fdShort)

	SyncTimeOff(g.roster, g.cfg.Employees, g.timeOffByName, anchor)
}

// eligibleCandidates filters a department's capable employees for one slot,
// recording dismissed flags for employees dropped solely due to an unapproved
// leave request.
func (g *generator) eligibleCandidates(dept Department, label string, date time.Time) []Employee {
	var candidates []Employee
	for _, emp := range g.capable[dept] {
		ok, reason, markDismissed := g.el.check(emp, dept, label, date)
		if !ok {
			if markDismissed {
				if a := g.roster.Get(emp.ID, date); a != nil {
					a.DismissedTimeOff = true
				}
			}
			g.logger.Debug("candidate dropped",
				zap.String("date", DateKey(date)),
				zap.String("department", string(dept)),
				zap.String("shift", label),
				zap.String("employee", emp.Name),
				zap.String("reason", string(reason)))
			continue
		}
		candidates = append(candidates, emp)
	}
	return candidates
}

// frontDeskPass fills up to two employees per variant per day, then places
// the pair onto the two staggered labels by seniority: most senior on the
// earlier start, late-stagger overrides always on the later one. A lone
// override pick still receives the later label.
func (g *generator) frontDeskPass(anchor time.Time) {
	for _, date := range WeekDates(anchor) {
		for _, variant := range FrontDeskVariants {
			candidates := g.eligibleCandidates(FrontDesk, variant.Token(), date)
			if len(candidates) == 0 {
				continue
			}
			rankCandidates(candidates, FrontDesk, variant.Token(), g.counts, g.lastTokens)
			picks := candidates
			if len(picks) > 2 {
				picks = picks[:2]
			}

			sortByStagger(picks)
			for i, emp := range picks {
				label := variant.EarlyLabel()
				if i == 1 || (len(picks) == 1 && emp.LateStagger) {
					label = variant.LateLabel()
				}
				g.assign(emp, FrontDesk, label, variant.Token(), date)
			}
		}
	}
}

// singlePickPass fills one employee per shift label per day for the lower
// priority departments, honoring the Front Desk reservation: reserved
// employees are skipped for that date, and on dates where Front Desk coverage
// is still short every Front Desk capable employee is skipped outright.
func (g *generator) singlePickPass(anchor time.Time, dept Department, labels []string, reserved map[string]map[string]bool, fdShort map[string]bool) {
	fdCapable := make(map[string]bool)
	for _, emp := range g.capable[FrontDesk] {
		fdCapable[emp.ID] = true
	}
	for _, date := range WeekDates(anchor) {
		dateKey := DateKey(date)
		for _, label := range labels {
			var candidates []Employee
			for _, emp := range g.eligibleCandidates(dept, label, date) {
				if reserved[dateKey][emp.ID] {
					g.logger.Debug("candidate reserved for front desk",
						zap.String("date", dateKey),
						zap.String("department", string(dept)),
						zap.String("shift", label),
						zap.String("employee", emp.Name))
					continue
				}
				if fdShort[dateKey] && fdCapable[emp.ID] {
					g.logger.Debug("candidate withheld, front desk short",
						zap.String("date", dateKey),
						zap.String("department", string(dept)),
						zap.String("shift", label),
						zap.String("employee", emp.Name))
					continue
				}
				candidates = append(candidates, emp)
			}
			if len(candidates) == 0 {
				continue
			}
			rankCandidates(candidates, dept, label, g.counts, g.lastTokens)
			g.assign(candidates[0], dept, label, NormalizeToken(dept, label), date)
		}
	}
}

// reserveForFrontDesk implements the reservation step: for each day where any
// Front Desk variant still has fewer than two assigned employees, every Front
// Desk capable employee left on the placeholder is withheld from the lower
// priority passes for that date.
func (g *generator) reserveForFrontDesk(anchor time.Time) (reserved map[string]map[string]bool, fdShort map[string]bool) {
	reserved = make(map[string]map[string]bool)
	fdShort = make(map[string]bool)
	for _, date := range WeekDates(anchor) {
		counts := map[FrontDeskVariant]int{}
		for _, emp := range g.capable[FrontDesk] {
			a := g.roster.Get(emp.ID, date)
			if a == nil || !a.Active() {
				continue
			}
			if v, ok := FrontDeskVariantOf(a.Value); ok {
				counts[v]++
			}
		}
		short := false
		for _, v := range FrontDeskVariants {
			if counts[v] < RequiredPerFrontDeskVariant {
				short = true
				break
			}
		}
		if !short {
			continue
		}
		dateKey := DateKey(date)
		fdShort[dateKey] = true
		set := make(map[string]bool)
		for _, emp := range g.capable[FrontDesk] {
			if a := g.roster.Get(emp.ID, date); a != nil && a.Value == Unassigned {
				set[emp.ID] = true
			}
		}
		if len(set) > 0 {
			reserved[dateKey] = set
			g.logger.Debug("front desk coverage short, reserving capable employees",
				zap.String("date", dateKey),
				zap.Int("reserved", len(set)))
		}
	}
	return reserved, fdShort
}

func (g *generator) assign(emp Employee, dept Department, label, token string, date time.Time) {
	a := g.roster.Get(emp.ID, date)
	if a == nil {
		return
	}
	a.Value = label
	g.counts[emp.ID]++
	g.lastTokens[lastTokenKey{employeeID: emp.ID, dept: dept}] = token
	g.logger.Debug("assigned shift",
		zap.String("date", DateKey(date)),
		zap.String("department", string(dept)),
		zap.String("shift", label),
		zap.String("employee", emp.Name))
}
