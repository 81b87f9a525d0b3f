package models

// Profile is the emergency/medical record kept on the device. All fields are
// free text; BloodType is normalized to upper case, at most 3 characters.
// Name, EmergencyContact and EmergencyPhone are required on save.
type Profile struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	BloodType         string `json:"bloodType"`
	EmergencyContact  string `json:"emergencyContact"`
	EmergencyPhone    string `json:"emergencyPhone"`
	Hospital          string `json:"hospital"`
	Allergies         string `json:"allergies"`
	Medications       string `json:"medications"`
	MedicalConditions string `json:"medicalConditions"`
	Insurance         string `json:"insurance"`
	DoctorName        string `json:"doctorName"`
	DoctorPhone       string `json:"doctorPhone"`
}
