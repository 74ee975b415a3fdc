// Package model defines the EczemaHub domain types.
//
// A Resource is one stored informational entry about eczema care: a
// title, a Markdown description, a closed category, creation and
// update timestamps, and a verification flag that only the admin
// caller can set.
//
// Category is a closed enumeration; its String/JSON/YAML codecs are
// generated with enumer (see category.go) so that persistence and
// filtering stay exhaustive and unknown category names are rejected
// at the boundary.
package model
