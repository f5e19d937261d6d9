package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout CharGer and it's
	evidence modules.
*/
type Zygosity int
type Consequence string
type ModeOfInheritance int
type EvidenceCode string
type EvidenceStatus int
type Scheme int
type Classification int
