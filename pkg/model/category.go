package model

//go:generate go run github.com/dmarkham/enumer -type Category -trimprefix Category -json -yaml -output category.gen.go

// Category classifies a resource. The set is closed: filtering and
// persistence are exhaustive over these values and unknown names are
// rejected by the generated codecs.
type Category int

const (
	CategoryTreatment Category = iota
	CategoryPrevention
	CategoryResearch
	CategoryDietAdvice
	CategoryTestimonial
	CategoryMedicalAdvice
)
