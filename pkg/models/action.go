package models

import "strings"

// DestinationKind is the category of an action directive's target
type DestinationKind string

const (
	// DestKeep leaves the entry where it is
	DestKeep DestinationKind = "keep"
	// DestRegion relocates into the region folder named by Target
	DestRegion DestinationKind = "region"
	// DestSpecial relocates into the special-version area for Target
	DestSpecial DestinationKind = "special"
	// DestCasino relocates into the casino content folder
	DestCasino DestinationKind = "casino"
	// DestAdult relocates into the adult content folder
	DestAdult DestinationKind = "adult"
	// DestReview stages into the review folder for manual inspection
	DestReview DestinationKind = "review"
	// DestDelete stages into the deletion folder; nothing is ever
	// unlinked directly
	DestDelete DestinationKind = "delete"
)

// Destination is where a directive sends an entry.
type Destination struct {
	Kind DestinationKind

	// Target qualifies region and special destinations: the region name
	// or the special category. Empty otherwise.
	Target string
}

// Keep is the default destination for entries no rule applies to.
var Keep = Destination{Kind: DestKeep}

// RegionDest builds a region destination.
func RegionDest(region string) Destination {
	return Destination{Kind: DestRegion, Target: region}
}

// SpecialDest builds a special-version destination.
func SpecialDest(c SpecialCategory) Destination {
	return Destination{Kind: DestSpecial, Target: string(c)}
}

// String renders the destination in the compact plan form, for example
// "keep", "region:Europe" or "special:Beta".
func (d Destination) String() string {
	if d.Target == "" {
		return string(d.Kind)
	}
	return string(d.Kind) + ":" + d.Target
}

// ParseDestination parses the compact form produced by String.
func ParseDestination(s string) (Destination, error) {
	kind, target, _ := strings.Cut(s, ":")
	d := Destination{Kind: DestinationKind(kind), Target: target}
	switch d.Kind {
	case DestKeep, DestCasino, DestAdult, DestReview, DestDelete:
		if target != "" {
			return Destination{}, &ValidationError{Field: "destination", Message: "unexpected target for " + kind}
		}
	case DestRegion, DestSpecial:
		if target == "" {
			return Destination{}, &ValidationError{Field: "destination", Message: kind + " requires a target"}
		}
	default:
		return Destination{}, &ValidationError{Field: "destination", Message: "unknown destination " + s}
	}
	return d, nil
}

// OlderVersionAction is what happens to a strictly older revision when
// version detection is enabled
type OlderVersionAction string

const (
	// OlderDelete stages older revisions for deletion
	OlderDelete OlderVersionAction = "delete"
	// OlderReview stages older revisions for manual review
	OlderReview OlderVersionAction = "review"
	// OlderKeep disables the version rule entirely
	OlderKeep OlderVersionAction = "keep"
)

// Valid reports whether the action is one of the three known values.
func (a OlderVersionAction) Valid() bool {
	switch a {
	case OlderDelete, OlderReview, OlderKeep:
		return true
	}
	return false
}

// Step is one selectable stage of the cleanup workflow
type Step string

const (
	// StepAdult routes adult-content titles
	StepAdult Step = "adult"
	// StepCasino routes casino and gambling titles
	StepCasino Step = "casino"
	// StepSpecials routes prototype, beta, alpha, demo and sample
	// releases
	StepSpecials Step = "specials"
	// StepRegions routes entries outside the main regions into region
	// folders
	StepRegions Step = "regions"
	// StepFolders routes folder-based games outside the main regions
	StepFolders Step = "folders"
	// StepDuplicates runs duplicate resolution on everything left
	StepDuplicates Step = "duplicates"
)

// DefaultSteps is the recommended cleanup order.
var DefaultSteps = []Step{
	StepAdult,
	StepCasino,
	StepSpecials,
	StepRegions,
	StepFolders,
	StepDuplicates,
}

// Valid reports whether the step name is known.
func (s Step) Valid() bool {
	for _, known := range DefaultSteps {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSteps parses a comma-separated step list, rejecting unknown names.
func ParseSteps(s string) ([]Step, error) {
	if strings.TrimSpace(s) == "" {
		return nil, &ValidationError{Field: "steps", Message: "step list is empty"}
	}
	var out []Step
	for _, part := range strings.Split(s, ",") {
		step := Step(strings.TrimSpace(part))
		if !step.Valid() {
			return nil, &ValidationError{Field: "steps", Message: "unknown step " + string(step)}
		}
		out = append(out, step)
	}
	return out, nil
}
