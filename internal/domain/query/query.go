// Package query turns raw list parameters into a bounded, deterministic plan.
// The Filter of a plan is the single predicate shared by the page query and the
// count query, so totals never drift from the rows returned.
package query

import (
	"math"
	"strconv"
	"strings"
	"time"

	"autoconnect/internal/domain/entity"
	domainerrors "autoconnect/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	ExportLimit     = 1000
)

// Limits bounds pagination and export sizes.
type Limits struct {
	DefaultPageSize int
	MaxPageSize     int
	ExportLimit     int
}

// DefaultLimits returns the built-in bounds.
func DefaultLimits() Limits {
	return Limits{
		DefaultPageSize: DefaultPageSize,
		MaxPageSize:     MaxPageSize,
		ExportLimit:     ExportLimit,
	}
}

func (l Limits) normalized() Limits {
	if l.MaxPageSize <= 0 {
		l.MaxPageSize = MaxPageSize
	}
	if l.DefaultPageSize <= 0 || l.DefaultPageSize > l.MaxPageSize {
		l.DefaultPageSize = min(DefaultPageSize, l.MaxPageSize)
	}
	if l.ExportLimit <= 0 {
		l.ExportLimit = ExportLimit
	}

	return l
}

// ScopeKind selects the base predicate of a query.
type ScopeKind int

const (
	// ScopeSelf matches requests created by the actor.
	ScopeSelf ScopeKind = iota
	// ScopeOwner matches requests whose snapshotted owner NIC equals the scope NIC.
	ScopeOwner
	// ScopeAll matches every request. Reserved for administrators.
	ScopeAll
)

// Scope is the already-authorized base of a query.
type Scope struct {
	Kind     ScopeKind
	ActorID  uuid.UUID
	OwnerNIC string
}

// SelfScope matches the actor's own requests.
func SelfScope(actorID uuid.UUID) Scope {
	return Scope{Kind: ScopeSelf, ActorID: actorID}
}

// OwnerScope matches requests for vehicles of the owner with the given NIC.
func OwnerScope(nic string) Scope {
	return Scope{Kind: ScopeOwner, OwnerNIC: entity.NormalizeNIC(nic)}
}

// AllScope matches every request.
func AllScope() Scope {
	return Scope{Kind: ScopeAll}
}

// Filter is a conjunction of optional predicates over requests joined with their vehicle.
type Filter struct {
	AddedBy         *uuid.UUID
	OwnerNIC        string
	VehicleID       *uuid.UUID
	Status          entity.RequestStatus
	Purpose         entity.Purpose
	Search          string
	CreatedFrom     *time.Time
	IncludeInactive bool
}

// ForScope returns the filter of a scope with no further predicates.
func ForScope(scope Scope) Filter {
	f := Filter{}
	switch scope.Kind {
	case ScopeSelf:
		id := scope.ActorID
		f.AddedBy = &id
	case ScopeOwner:
		f.OwnerNIC = scope.OwnerNIC
	case ScopeAll:
	}

	return f
}

// Matches evaluates the filter in memory. vehicle may be nil when unknown, in which
// case only the request notes are searched.
func (f Filter) Matches(r *entity.AddedVehicleRequest, vehicle *entity.VehicleSummary) bool {
	if !f.IncludeInactive && !r.IsActive {
		return false
	}
	if f.AddedBy != nil && r.AddedBy != *f.AddedBy {
		return false
	}
	if f.OwnerNIC != "" && r.OwnerNIC != f.OwnerNIC {
		return false
	}
	if f.VehicleID != nil && r.VehicleID != *f.VehicleID {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Purpose != "" && r.Purpose != f.Purpose {
		return false
	}
	if f.CreatedFrom != nil && r.CreatedAt.Before(*f.CreatedFrom) {
		return false
	}
	if f.Search != "" {
		return matchesSearch(strings.ToLower(f.Search), r, vehicle)
	}

	return true
}

func matchesSearch(needle string, r *entity.AddedVehicleRequest, v *entity.VehicleSummary) bool {
	if strings.Contains(strings.ToLower(r.Notes), needle) {
		return true
	}
	if v == nil {
		return false
	}

	for _, s := range []string{v.RegistrationNumber, v.Make, v.Model} {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}

	return false
}

// SortField is a whitelisted sort column.
type SortField string

const (
	SortCreatedAt     SortField = "createdAt"
	SortUpdatedAt     SortField = "updatedAt"
	SortScheduledDate SortField = "scheduledDate"
	SortPriority      SortField = "priority"
	SortStatus        SortField = "status"
	SortPurpose       SortField = "purpose"
)

func (f SortField) isValid() bool {
	switch f {
	case SortCreatedAt, SortUpdatedAt, SortScheduledDate, SortPriority, SortStatus, SortPurpose:
		return true
	}

	return false
}

// Sort orders results by one field, ties broken by id in the same direction.
type Sort struct {
	Field SortField
	Desc  bool
}

// DefaultSort is newest first.
func DefaultSort() Sort {
	return Sort{Field: SortCreatedAt, Desc: true}
}

// Page is a 1-indexed window over the sorted results.
type Page struct {
	Number int
	Size   int
}

// maxOffset bounds the rows a page may skip, keeping Offset within int and SQL OFFSET range.
const maxOffset = math.MaxInt32

// Offset is the number of rows skipped before the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Plan is a ready-to-run query.
type Plan struct {
	Filter Filter
	Sort   Sort
	Page   Page
}

// ListParams are the raw, caller-supplied list parameters.
type ListParams struct {
	Page      string `query:"page"`
	Limit     string `query:"limit"`
	Status    string `query:"status"`
	Purpose   string `query:"purpose"`
	OwnerNIC  string `query:"ownerNIC"`
	Search    string `query:"search"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
}

// Build validates params and produces a paginated plan within scope.
func Build(scope Scope, params ListParams, limits Limits) (*Plan, error) {
	limits = limits.normalized()
	verr := &domainerrors.ValidationError{}

	filter := buildFilter(scope, params, verr)
	sort := buildSort(params, verr)
	page := Page{
		Number: parsePositive("page", params.Page, DefaultPage, verr),
		Size:   parsePositive("limit", params.Limit, limits.DefaultPageSize, verr),
	}
	page.Size = min(page.Size, limits.MaxPageSize)
	if page.Number-1 > maxOffset/page.Size {
		verr.Add("page", "is out of range")
		page.Number = DefaultPage
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return &Plan{Filter: filter, Sort: sort, Page: page}, nil
}

// BuildExport produces an unpaginated plan capped at the export limit.
// Paging parameters are ignored.
func BuildExport(scope Scope, params ListParams, limits Limits) (*Plan, error) {
	limits = limits.normalized()
	verr := &domainerrors.ValidationError{}

	filter := buildFilter(scope, params, verr)
	sort := buildSort(params, verr)

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return &Plan{Filter: filter, Sort: sort, Page: Page{Number: 1, Size: limits.ExportLimit}}, nil
}

func buildFilter(scope Scope, params ListParams, verr *domainerrors.ValidationError) Filter {
	filter := ForScope(scope)

	if s := upper(params.Status); s != "" {
		status := entity.RequestStatus(s)
		if !status.IsValid() {
			verr.Add("status", "has an unsupported value")
		}
		filter.Status = status
	}

	if s := upper(params.Purpose); s != "" {
		purpose := entity.Purpose(s)
		if !purpose.IsValid() {
			verr.Add("purpose", "has an unsupported value")
		}
		filter.Purpose = purpose
	}

	// an explicit ownerNIC narrows the scope, it never widens it
	if nic := entity.NormalizeNIC(params.OwnerNIC); nic != "" {
		if scope.Kind == ScopeOwner && nic != scope.OwnerNIC {
			verr.Add("ownerNIC", "does not match the owner in the path")
		}
		filter.OwnerNIC = nic
	}

	filter.Search = strings.TrimSpace(params.Search)

	return filter
}

func buildSort(params ListParams, verr *domainerrors.ValidationError) Sort {
	sort := DefaultSort()

	if s := strings.TrimSpace(params.SortBy); s != "" {
		field := SortField(s)
		if !field.isValid() {
			verr.Add("sortBy", "has an unsupported value")
		}
		sort.Field = field
	}

	switch strings.ToLower(strings.TrimSpace(params.SortOrder)) {
	case "", "desc":
		sort.Desc = true
	case "asc":
		sort.Desc = false
	default:
		verr.Add("sortOrder", "must be asc or desc")
	}

	return sort
}

func parsePositive(field, raw string, def int, verr *domainerrors.ValidationError) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		verr.Add(field, "must be a number")

		return def
	}
	if n < 1 {
		verr.Add(field, "must be at least 1")

		return def
	}

	return n
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
