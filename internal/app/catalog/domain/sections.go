package domain

// Detail section names accepted by the variant section patch. Each section
// has its own merge semantics: point lists and icon/tag lists are replaced,
// key-value lists are merged by key identity.
const (
	SectionSpecPoints         = "specPoints"
	SectionSpecPairs          = "specPairs"
	SectionFeatures           = "features"
	SectionFeatureIcons       = "featureIcons"
	SectionStandardParameters = "standardParameters"
	SectionOptionalParameters = "optionalParameters"
	SectionWarrantyPoints     = "warrantyPoints"
)

// StandardParameterIcons is the fixed vocabulary for standard parameter tags.
var StandardParameterIcons = []string{"ECG", "RESPIRATION", "SPO2", "NIBP", "TEMP", "PR"}

// OptionalParameterIcons is the fixed vocabulary for optional parameter tags.
var OptionalParameterIcons = []string{"ETCO2", "IBP"}

// ValidateParameterIcons checks every tag against a fixed vocabulary and
// names the offending field on failure.
func ValidateParameterIcons(field string, tags, vocabulary []string) error {
	for _, tag := range tags {
		ok := false
		for _, v := range vocabulary {
			if tag == v {
				ok = true
				break
			}
		}
		if !ok {
			return NewValidationError(field, "unknown icon "+tag)
		}
	}
	return nil
}

// ApplySection applies a section patch to the detail block. Points, icons
// and parameter tags replace the stored list; specPairs and features use the
// key-identity merge.
func (d *VariantDetail) ApplySection(section string, points []string, pairs []KeyValue) error {
	switch section {
	case SectionSpecPoints:
		d.SpecPoints = points
	case SectionWarrantyPoints:
		d.WarrantyPoints = points
	case SectionFeatureIcons:
		d.FeatureIcons = points
	case SectionStandardParameters:
		if err := ValidateParameterIcons(section, points, StandardParameterIcons); err != nil {
			return err
		}
		d.StandardParameters = points
	case SectionOptionalParameters:
		if err := ValidateParameterIcons(section, points, OptionalParameterIcons); err != nil {
			return err
		}
		d.OptionalParameters = points
	case SectionSpecPairs:
		d.SpecPairs = MergeKeyValues(d.SpecPairs, pairs)
	case SectionFeatures:
		d.Features = MergeKeyValues(d.Features, pairs)
	default:
		return ErrInvalidSection
	}
	return nil
}

// IsPairSection reports whether the section carries key-value pairs rather
// than plain points.
func IsPairSection(section string) bool {
	return section == SectionSpecPairs || section == SectionFeatures
}
