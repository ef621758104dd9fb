package afm

import (
	"context"
	"fmt"
)

// Error codes returned by ValidateExecution.
const (
	CodeMissingLocalIdentifier    = "MissingLocalIdentifier"
	CodeDuplicateLocalIdentifier  = "DuplicateLocalIdentifier"
	CodeInvalidMeasureDefinition  = "InvalidMeasureDefinition"
	CodeUnresolvedLocalIdentifier = "UnresolvedLocalIdentifier"
)

// ValidateExecution checks the referential integrity of an execution: every
// local identifier referenced by a derived measure, sort locator, total or
// dimension item must resolve to an attribute or measure declared in the same
// execution. The schema itself cannot express this invariant, so callers are
// expected to run this before submitting an execution.
//
// Only presence is checked. Whether the referenced catalog objects exist is
// the backend's business.
func ValidateExecution(ctx context.Context, execution *Execution) error {
	afm := execution.Execution.AFM

	attributes := make(map[string]bool)
	for _, attribute := range afm.Attributes {
		if attribute.LocalIdentifier == "" {
			return NewValidationError(ctx, CodeMissingLocalIdentifier, "attribute is missing a local identifier")
		}
		if attributes[attribute.LocalIdentifier] {
			return NewValidationError(ctx, CodeDuplicateLocalIdentifier,
				fmt.Sprintf("duplicate attribute local identifier: %s", attribute.LocalIdentifier))
		}
		attributes[attribute.LocalIdentifier] = true
	}

	measures := make(map[string]bool)
	for _, measure := range afm.Measures {
		if measure.LocalIdentifier == "" {
			return NewValidationError(ctx, CodeMissingLocalIdentifier, "measure is missing a local identifier")
		}
		if measures[measure.LocalIdentifier] {
			return NewValidationError(ctx, CodeDuplicateLocalIdentifier,
				fmt.Sprintf("duplicate measure local identifier: %s", measure.LocalIdentifier))
		}
		if err := measure.Definition.Validate(); err != nil {
			return NewValidationError(ctx, CodeInvalidMeasureDefinition,
				fmt.Sprintf("measure %s: %s", measure.LocalIdentifier, err.Error()))
		}
		measures[measure.LocalIdentifier] = true
	}

	var unresolved []string
	resolveMeasure := func(identifier, referencedBy string) {
		if !measures[identifier] {
			unresolved = append(unresolved, fmt.Sprintf("%s (referenced by %s)", identifier, referencedBy))
		}
	}
	resolveAttribute := func(identifier, referencedBy string) {
		if !attributes[identifier] {
			unresolved = append(unresolved, fmt.Sprintf("%s (referenced by %s)", identifier, referencedBy))
		}
	}

	for _, measure := range afm.Measures {
		definition := measure.Definition
		switch {
		case definition.PopMeasure != nil:
			resolveMeasure(definition.PopMeasure.MeasureIdentifier, measure.LocalIdentifier)
		case definition.PreviousPeriodMeasure != nil:
			resolveMeasure(definition.PreviousPeriodMeasure.MeasureIdentifier, measure.LocalIdentifier)
		case definition.ArithmeticMeasure != nil:
			for _, operand := range definition.ArithmeticMeasure.MeasureIdentifiers {
				resolveMeasure(operand, measure.LocalIdentifier)
			}
		}
	}

	for _, nativeTotal := range afm.NativeTotals {
		resolveMeasure(nativeTotal.MeasureIdentifier, "nativeTotals")
		for _, identifier := range nativeTotal.AttributeIdentifiers {
			resolveAttribute(identifier, "nativeTotals")
		}
	}

	if resultSpec := execution.Execution.ResultSpec; resultSpec != nil {
		for _, dimension := range resultSpec.Dimensions {
			for _, identifier := range dimension.ItemIdentifiers {
				if identifier == MeasureGroupIdentifier {
					continue
				}
				resolveAttribute(identifier, "resultSpec.dimensions")
			}
			for _, total := range dimension.Totals {
				resolveMeasure(total.MeasureIdentifier, "resultSpec.totals")
				resolveAttribute(total.AttributeIdentifier, "resultSpec.totals")
			}
		}
		for _, sort := range resultSpec.Sorts {
			switch {
			case sort.AttributeSortItem != nil:
				resolveAttribute(sort.AttributeSortItem.AttributeIdentifier, "resultSpec.sorts")
			case sort.MeasureSortItem != nil:
				for _, locator := range sort.MeasureSortItem.Locators {
					switch {
					case locator.AttributeLocatorItem != nil:
						resolveAttribute(locator.AttributeLocatorItem.AttributeIdentifier, "resultSpec.sorts")
					case locator.MeasureLocatorItem != nil:
						resolveMeasure(locator.MeasureLocatorItem.MeasureIdentifier, "resultSpec.sorts")
					}
				}
			}
		}
	}

	if unresolved != nil {
		return NewValidationError(ctx, CodeUnresolvedLocalIdentifier,
			fmt.Sprintf("unresolved local identifiers: %v", unresolved))
	}
	return nil
}
