package doctors

import "github.com/m04kA/MediCare-Gateway/internal/domain"

// demoDoctors справочник, который отдаётся при недоступном бэкенде
var demoDoctors = []domain.Doctor{
	{
		ID:              "1",
		Name:            "Dr. Sarah Johnson",
		Email:           "sarah.johnson@medicare.com",
		Specialization:  "Cardiologist",
		Experience:      12,
		Rating:          4.9,
		ConsultationFee: 150,
		Bio:             "Board-certified cardiologist with expertise in preventive cardiology.",
	},
}

func demoDirectory() []domain.Doctor {
	out := make([]domain.Doctor, len(demoDoctors))
	copy(out, demoDoctors)
	return out
}
