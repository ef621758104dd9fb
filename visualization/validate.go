package visualization

import "fmt"

// ValidateVisualizationObject checks the content of the visualization object
// structure. Only presence is checked; whether referenced catalog objects
// exist is the persistence store's business.
func ValidateVisualizationObject(visualization *VisualizationObject) error {
	var missingFields []string

	if visualization.Meta.Title == "" {
		missingFields = append(missingFields, "meta.title")
	}

	class := visualization.Content.VisualizationClass
	if class.URI == "" && class.Identifier == "" {
		missingFields = append(missingFields, "content.visualizationClass")
	}

	for i, bucket := range visualization.Content.Buckets {
		for j, item := range bucket.Items {
			switch {
			case item.Measure != nil && item.VisualizationAttribute != nil:
				return fmt.Errorf("bucket item carries more than one variant: buckets[%d].items[%d]", i, j)
			case item.Measure != nil:
				if item.Measure.LocalIdentifier == "" {
					missingFields = append(missingFields, fmt.Sprintf("buckets[%d].items[%d].measure.localIdentifier", i, j))
				}
				if definitionCount(item.Measure.Definition) != 1 {
					return fmt.Errorf("measure definition must carry exactly one variant: buckets[%d].items[%d]", i, j)
				}
			case item.VisualizationAttribute != nil:
				if item.VisualizationAttribute.LocalIdentifier == "" {
					missingFields = append(missingFields, fmt.Sprintf("buckets[%d].items[%d].visualizationAttribute.localIdentifier", i, j))
				}
			default:
				return fmt.Errorf("bucket item carries no variant: buckets[%d].items[%d]", i, j)
			}
		}
	}

	if missingFields != nil {
		return fmt.Errorf("missing mandatory fields: %v", missingFields)
	}

	return nil
}

func definitionCount(definition MeasureDefinition) int {
	count := 0
	if definition.MeasureDefinition != nil {
		count++
	}
	if definition.PopMeasureDefinition != nil {
		count++
	}
	if definition.PreviousPeriodMeasure != nil {
		count++
	}
	if definition.ArithmeticMeasure != nil {
		count++
	}
	return count
}
