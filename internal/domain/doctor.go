package domain

import "strings"

// Doctor represents a verified doctor as exposed by the MediCare backend
type Doctor struct {
	ID              string
	Name            string
	Email           string
	Specialization  string
	Experience      int     // years
	Rating          float64 // 0.0 - 5.0
	ConsultationFee float64
	Bio             string
}

// WithDefaults fills display values the backend left empty
func (d Doctor) WithDefaults() Doctor {
	if d.Rating <= 0 {
		d.Rating = DefaultDoctorRating
	}
	if d.Rating > 5 {
		d.Rating = 5
	}
	if d.Experience <= 0 {
		d.Experience = DefaultDoctorExperience
	}
	if d.ConsultationFee <= 0 {
		d.ConsultationFee = DefaultConsultationFee
	}
	if strings.TrimSpace(d.Bio) == "" {
		d.Bio = DefaultDoctorBio
	}
	return d
}

// Initials returns the upper-cased first letters of each name part
func (d Doctor) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(d.Name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
