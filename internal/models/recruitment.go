package models

// RecruitmentToggleID is the fixed _id of the singleton toggle document.
const RecruitmentToggleID = "recruitment"

type RecruitmentStatus string

const (
	RecruitmentOn  RecruitmentStatus = "on"
	RecruitmentOff RecruitmentStatus = "off"
)

// RecruitmentToggle is the global on/off switch for the executive application form.
type RecruitmentToggle struct {
	ID     string            `bson:"_id" json:"_id"`
	Status RecruitmentStatus `bson:"status" json:"status"`
}

// RecruitmentUpdate is the body of PUT /recruitment-onOff.
type RecruitmentUpdate struct {
	Status RecruitmentStatus `json:"status" binding:"required,oneof=on off"`
}
