package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// FamilyMember is the personal-field subset embedded in a submission.
// It carries no identity of its own and is only ever stored serialized
// on its owning Submission.
type FamilyMember struct {
	FullName      string `json:"fullname"`
	FatherName    string `json:"father_name"`
	MotherName    string `json:"mother_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Phone2        string `json:"phone2"`
	Country       string `json:"country"`
	Ethnicity     string `json:"ethnicity"`
	Religion      string `json:"religion"`
	Gender        string `json:"gender"`
	DOB           string `json:"dob"`
	Arrival       string `json:"arrival"`
	AddressState  string `json:"address_state"`
	Vulnerability string `json:"vulnerability"`
}

// Submission is one applicant's intake record. Dates are stored in
// display format (dd/mm/yyyy); the ISO form from the submitted form is
// discarded once normalized.
type Submission struct {
	gorm.Model
	Reference        string `json:"reference"`
	UNHCRStatus      string `json:"unhcr_status" gorm:"column:unhcr_status"`
	UNHCRFileNumber  string `json:"unhcr_file_number" gorm:"column:unhcr_file_number"`
	IndividualNumber string `json:"individual_number"`
	FullName         string `json:"fullname" gorm:"column:fullname"`
	FatherName       string `json:"father_name"`
	MotherName       string `json:"mother_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Phone2           string `json:"phone2"`
	Country          string `json:"country"`
	Ethnicity        string `json:"ethnicity"`
	Religion         string `json:"religion"`
	Gender           string `json:"gender"`
	DOB              string `json:"dob" gorm:"column:dob"`
	Arrival          string `json:"arrival"`
	AddressState     string `json:"address_state"`
	PhotoPath        string `json:"photo_path"`
	FamilyCount      string `json:"family_members" gorm:"column:family_members"`
	Vulnerability    string `json:"vulnerability"`
	Consent          string `json:"consent"`
	FamilyData       string `json:"family_members_data" gorm:"column:family_members_data"`
}

// SetFamily serializes the family members onto the row.
func (s *Submission) SetFamily(family []FamilyMember) error {
	data, err := json.Marshal(family)
	if err != nil {
		return err
	}
	s.FamilyData = string(data)
	return nil
}

// Family deserializes the stored family members. An empty blob yields
// an empty slice.
func (s *Submission) Family() ([]FamilyMember, error) {
	if s.FamilyData == "" {
		return nil, nil
	}
	var family []FamilyMember
	if err := json.Unmarshal([]byte(s.FamilyData), &family); err != nil {
		return nil, err
	}
	return family, nil
}
