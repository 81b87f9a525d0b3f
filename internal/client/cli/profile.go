package cli

import (
	"context"
	"fmt"
)

func (a *App) handleOpenProfile(ctx context.Context) {
	a.profileDraft = a.profile.Load(ctx, a.auth.Session())
	a.profileOpen = true
	a.printProfile()
}

func (a *App) printProfile() {
	p := a.profileDraft
	if p == nil {
		return
	}

	printlnFn("Personal information")
	printlnFn(fmt.Sprintf("  Name:               %s", p.Name))
	printlnFn(fmt.Sprintf("  Email (read-only):  %s", p.Email))
	printlnFn("Medical information")
	printlnFn(fmt.Sprintf("  Blood type:         %s", p.BloodType))
	printlnFn(fmt.Sprintf("  Allergies:          %s", p.Allergies))
	printlnFn(fmt.Sprintf("  Medications:        %s", p.Medications))
	printlnFn(fmt.Sprintf("  Medical conditions: %s", p.MedicalConditions))
	printlnFn("Emergency")
	printlnFn(fmt.Sprintf("  Contact name:       %s", p.EmergencyContact))
	printlnFn(fmt.Sprintf("  Contact phone:      %s", p.EmergencyPhone))
	printlnFn(fmt.Sprintf("  Preferred hospital: %s", p.Hospital))
	printlnFn("Additional")
	printlnFn(fmt.Sprintf("  Insurance:          %s", p.Insurance))
	printlnFn(fmt.Sprintf("  Doctor:             %s", p.DoctorName))
	printlnFn(fmt.Sprintf("  Doctor phone:       %s", p.DoctorPhone))
}

// handleEditProfile walks every editable field; pressing Enter keeps the
// current value. The email is read-only, it always mirrors the session.
func (a *App) handleEditProfile() {
	p := a.profileDraft
	if p == nil {
		return
	}

	fields := []struct {
		label string
		value *string
	}{
		{"Name", &p.Name},
		{"Blood type (e.g. O+, A-, AB+)", &p.BloodType},
		{"Allergies", &p.Allergies},
		{"Medications", &p.Medications},
		{"Medical conditions", &p.MedicalConditions},
		{"Emergency contact name", &p.EmergencyContact},
		{"Emergency contact phone", &p.EmergencyPhone},
		{"Preferred hospital", &p.Hospital},
		{"Insurance", &p.Insurance},
		{"Doctor name", &p.DoctorName},
		{"Doctor phone", &p.DoctorPhone},
	}

	for _, f := range fields {
		input, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.label, *f.value), a.out)
		if err != nil {
			printlnFn(err.Error())
			return
		}
		if input != "" {
			*f.value = input
		}
	}
}

func (a *App) handleSaveProfile(ctx context.Context) {
	if a.profileDraft == nil {
		return
	}

	saved, err := a.profile.Save(ctx, a.profileDraft)
	if err != nil {
		printlnFn(err.Error())
		return
	}

	a.profileDraft = saved
	printlnFn("Profile updated. Your information was saved.")
}
