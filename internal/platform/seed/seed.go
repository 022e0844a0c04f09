// Package seed supplies the startup dataset. The literal collections
// mirror the demo deployment's fixtures; the Random helpers generate
// larger directories for load-style demos.
package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/hmspro/hms/internal/domain/billing"
	"github.com/hmspro/hms/internal/domain/doctors"
	"github.com/hmspro/hms/internal/domain/emr"
	"github.com/hmspro/hms/internal/domain/patients"
	"github.com/hmspro/hms/internal/domain/scheduling"
	"github.com/hmspro/hms/internal/platform/auth"
	"github.com/hmspro/hms/pkg/validate"
)

// Dataset is everything the stores consume at startup.
type Dataset struct {
	Patients     []patients.Patient
	Doctors      []doctors.Doctor
	Appointments []scheduling.Appointment
	Records      []emr.Record
	Invoices     []billing.Invoice
	Users        []auth.User
}

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format(validate.DateLayout)
}

// Demo returns the fixed demo dataset. Appointment dates are relative to
// the current day so the book always has visits today, tomorrow and in
// the recent past.
func Demo() Dataset {
	return Dataset{
		Patients: []patients.Patient{
			{ID: 1, Name: "John Doe", Age: 45, Gender: "Male", ContactPhone: "555-010-0101", LastVisit: "2023-10-15", Status: patients.StatusStable, InsuranceProvider: "Blue Cross", PolicyNumber: "XJ559201", GroupNumber: "GRP-1001"},
			{ID: 2, Name: "Jane Smith", Age: 34, Gender: "Female", ContactPhone: "555-010-0102", LastVisit: "2023-11-02", Status: patients.StatusRecovering, InsuranceProvider: "Aetna", PolicyNumber: "BC772945", GroupNumber: "GRP-2023"},
			{ID: 3, Name: "Robert Johnson", Age: 62, Gender: "Male", ContactPhone: "555-010-0103", LastVisit: "2023-09-28", Status: patients.StatusCritical},
			{ID: 4, Name: "Emily White", Age: 28, Gender: "Female", ContactPhone: "555-010-0104", LastVisit: "2023-10-22", Status: patients.StatusStable, InsuranceProvider: "United Healthcare", PolicyNumber: "UH987654", GroupNumber: "GRP-UH05"},
			{ID: 5, Name: "Michael Brown", Age: 51, Gender: "Male", ContactPhone: "555-010-0105", LastVisit: "2023-11-05", Status: patients.StatusRecovering},
			{ID: 6, Name: "Jessica Davis", Age: 39, Gender: "Female", ContactPhone: "555-010-0106", LastVisit: "2023-10-30", Status: patients.StatusStable, InsuranceProvider: "Cigna", PolicyNumber: "CG123456", GroupNumber: "GRP-CIGNA"},
			{ID: 7, Name: "David Wilson", Age: 70, Gender: "Male", ContactPhone: "555-010-0107", LastVisit: "2023-08-12", Status: patients.StatusCritical},
			{ID: 8, Name: "Sarah Miller", Age: 25, Gender: "Female", ContactPhone: "555-010-0108", LastVisit: "2023-11-08", Status: patients.StatusStable},
			{ID: 9, Name: "Chris Lee", Age: 48, Gender: "Male", ContactPhone: "555-010-0109", LastVisit: "2023-10-18", Status: patients.StatusRecovering, InsuranceProvider: "Aetna", PolicyNumber: "AE459988", GroupNumber: "GRP-2023"},
			{ID: 10, Name: "Amanda Taylor", Age: 31, Gender: "Female", ContactPhone: "555-010-0110", LastVisit: "2023-11-01", Status: patients.StatusStable},
		},
		Doctors: []doctors.Doctor{
			{ID: 1, Name: "Dr. Carol Evans", Specialty: "Cardiologist", ContactPhone: "555-020-0201", Email: "carol.evans@hms.pro"},
			{ID: 2, Name: "Dr. Ben Carter", Specialty: "Neurologist", ContactPhone: "555-020-0202", Email: "ben.carter@hms.pro"},
			{ID: 3, Name: "Dr. Susan Ray", Specialty: "Radiologist", ContactPhone: "555-020-0203", Email: "susan.ray@hms.pro"},
			{ID: 4, Name: "Dr. Michael Lee", Specialty: "Pediatrician", ContactPhone: "555-020-0204", Email: "michael.lee@hms.pro"},
			{ID: 5, Name: "Dr. Olivia Chen", Specialty: "Dermatologist", ContactPhone: "555-020-0205", Email: "olivia.chen@hms.pro"},
		},
		Appointments: []scheduling.Appointment{
			{ID: 1, PatientID: 1, DoctorID: 1, Date: day(0), Time: "09:00 AM", Type: "Follow-up", Status: scheduling.StatusConfirmed},
			{ID: 2, PatientID: 2, DoctorID: 1, Date: day(0), Time: "09:30 AM", Type: "New Patient", Status: scheduling.StatusConfirmed},
			{ID: 3, PatientID: 4, DoctorID: 1, Date: day(1), Time: "10:00 AM", Type: "Consultation", Status: scheduling.StatusPending},
			{ID: 4, PatientID: 5, DoctorID: 2, Date: day(1), Time: "10:30 AM", Type: "Follow-up", Status: scheduling.StatusConfirmed},
			{ID: 5, PatientID: 6, DoctorID: 1, Date: day(2), Time: "11:00 AM", Type: "Check-up", Status: scheduling.StatusCancelled},
			{ID: 6, PatientID: 8, DoctorID: 1, Date: day(2), Time: "11:30 AM", Type: "New Patient", Status: scheduling.StatusConfirmed},
			{ID: 7, PatientID: 3, DoctorID: 2, Date: day(-1), Time: "02:00 PM", Type: "Emergency", Status: scheduling.StatusConfirmed},
			{ID: 8, PatientID: 7, DoctorID: 1, Date: day(-2), Time: "03:00 PM", Type: "Urgent Care", Status: scheduling.StatusConfirmed},
		},
		Records: []emr.Record{
			{ID: 1, PatientID: 1, Type: emr.TypeProgressNote, Date: "2023-10-15", Title: "Routine Check-up", Details: "Patient reports feeling well. Blood pressure is stable at 120/80. Continue current medication.", Author: "Dr. Carol Evans"},
			{ID: 2, PatientID: 1, Type: emr.TypeAllergy, Date: "2022-05-20", Title: "Penicillin", Details: "Patient experiences hives and shortness of breath.", Author: "Dr. Carol Evans"},
			{ID: 3, PatientID: 1, Type: emr.TypeMedication, Date: "2023-10-15", Title: "Lisinopril", Details: "Dosage: 10mg. Frequency: 1 tablet daily. Start Date: 2023-10-15. Notes: For hypertension.", Author: "Dr. Carol Evans"},
			{ID: 4, PatientID: 2, Type: emr.TypeProgressNote, Date: "2023-11-02", Title: "Post-Op Follow-up", Details: "Surgical incision is healing well. No signs of infection. Patient can begin light physical therapy.", Author: "Dr. Ben Carter"},
			{ID: 5, PatientID: 3, Type: emr.TypeImagingReport, Date: "2023-09-28", Title: "Chest X-Ray", Details: "Findings consistent with pneumonia in the lower left lobe.", Author: "Dr. Susan Ray"},
			{ID: 6, PatientID: 3, Type: emr.TypeLabResult, Date: "2023-09-28", Title: "CBC", Details: "White blood cell count is elevated, indicating infection.", Author: "LabCorp"},
			{ID: 7, PatientID: 2, Type: emr.TypeMedication, Date: "2023-11-02", Title: "Oxycodone", Details: "Dosage: 5mg. Frequency: Every 6 hours as needed. Start Date: 2023-11-02. End Date: 2023-11-09. Notes: For post-op pain.", Author: "Dr. Ben Carter"},
			{ID: 8, PatientID: 3, Type: emr.TypeMedication, Date: "2023-09-28", Title: "Amoxicillin", Details: "Dosage: 500mg. Frequency: Twice daily for 7 days. Start Date: 2023-09-28. End Date: 2023-10-05", Author: "Dr. Carol Evans"},
			{ID: 9, PatientID: 4, Type: emr.TypeProgressNote, Date: "2023-10-22", Title: "Annual Physical", Details: "Patient is in good health. All vitals are normal. Recommended continuing healthy diet and exercise.", Author: "Dr. Carol Evans"},
			{ID: 10, PatientID: 4, Type: emr.TypeLabResult, Date: "2023-10-22", Title: "Lipid Panel", Details: "Cholesterol levels are within the normal range.", Author: "LabCorp"},
			{ID: 11, PatientID: 5, Type: emr.TypeImagingReport, Date: "2023-11-05", Title: "Head MRI", Details: "No abnormalities detected. Follow up regarding persistent headaches.", Author: "Dr. Susan Ray"},
			{ID: 12, PatientID: 5, Type: emr.TypeProgressNote, Date: "2023-11-05", Title: "Neurology Consult", Details: "Patient complains of chronic migraines. MRI results are clear. Prescribing new medication to manage symptoms.", Author: "Dr. Ben Carter"},
			{ID: 13, PatientID: 6, Type: emr.TypeProgressNote, Date: "2023-10-30", Title: "Dermatology Visit", Details: "Examined skin rash. Appears to be a mild allergic reaction. Prescribed topical cream.", Author: "Dr. Ben Carter"},
			{ID: 14, PatientID: 6, Type: emr.TypeAllergy, Date: "2023-10-30", Title: "Latex", Details: "Patient reports mild skin irritation upon contact with latex gloves.", Author: "Dr. Ben Carter"},
			{ID: 15, PatientID: 7, Type: emr.TypeProgressNote, Date: "2023-08-12", Title: "Emergency Admission", Details: "Patient admitted with severe chest pain. ECG shows signs of myocardial infarction. Admitted to CCU.", Author: "Dr. Carol Evans"},
			{ID: 16, PatientID: 7, Type: emr.TypeMedication, Date: "2023-08-12", Title: "Aspirin", Details: "Dosage: 325mg. Frequency: Administered once immediately. Start Date: 2023-08-12. Notes: Administered upon ER admission for suspected MI.", Author: "ER Nurse"},
			{ID: 17, PatientID: 8, Type: emr.TypeProgressNote, Date: "2023-11-08", Title: "Prenatal Check-up", Details: "20-week check-up. Fetal heartbeat is strong. All measurements are normal.", Author: "Dr. Carol Evans"},
			{ID: 18, PatientID: 9, Type: emr.TypeProgressNote, Date: "2023-10-18", Title: "Orthopedic Follow-up", Details: "Knee injury is healing well. Continue with physical therapy exercises.", Author: "Dr. Ben Carter"},
			{ID: 19, PatientID: 9, Type: emr.TypeImagingReport, Date: "2023-09-15", Title: "Knee X-Ray", Details: "Minor ligament sprain. No fractures detected.", Author: "Dr. Susan Ray"},
			{ID: 20, PatientID: 10, Type: emr.TypeProgressNote, Date: "2023-11-01", Title: "Flu Shot Administration", Details: "Patient received annual influenza vaccine. No adverse reactions noted.", Author: "Nurse Practitioner"},
			{ID: 21, PatientID: 1, Type: emr.TypeLabResult, Date: "2023-10-15", Title: "A1C Level", Details: "A1C at 5.5%, indicating good blood sugar control.", Author: "LabCorp"},
			{ID: 22, PatientID: 8, Type: emr.TypeImagingReport, Date: "2023-11-08", Title: "Ultrasound", Details: "Anatomy scan is normal. All expected structures are visible and appropriately sized for gestational age.", Author: "Dr. Susan Ray"},
		},
		Invoices: []billing.Invoice{
			{ID: "INV-001", PatientID: 1, Date: "2023-10-15", Amount: 250.00, Status: billing.StatusPaid, AppointmentID: 1},
			{ID: "INV-002", PatientID: 2, Date: "2023-11-02", Amount: 150.75, Status: billing.StatusPaid, AppointmentID: 2},
			{ID: "INV-003", PatientID: 3, Date: "2023-09-28", Amount: 800.00, Status: billing.StatusOverdue, AppointmentID: 7},
			{ID: "INV-004", PatientID: 4, Date: "2023-10-22", Amount: 75.00, Status: billing.StatusPending},
			{ID: "INV-005", PatientID: 5, Date: "2023-11-05", Amount: 450.50, Status: billing.StatusPaid, AppointmentID: 4},
			{ID: "INV-006", PatientID: 6, Date: "2023-10-30", Amount: 120.00, Status: billing.StatusPending},
		},
		Users: []auth.User{
			{ID: "0", Name: "Alex Admin", Email: "alex.admin@hms.pro", Role: auth.RoleAdmin, Title: "System Administrator", Password: "password123"},
			{ID: "1", Name: "Dr. Carol Evans", Email: "carol.evans@hms.pro", Role: auth.RoleDoctor, Title: "Cardiologist", Password: "password123"},
			{ID: "2", Name: "Nancy Nurse", Email: "nancy.nurse@hms.pro", Role: auth.RoleNurse, Title: "Head Nurse", Password: "password123"},
			{ID: "3", Name: "Rita Receptionist", Email: "rita.receptionist@hms.pro", Role: auth.RoleReceptionist, Title: "Front Desk", Password: "password123"},
			{ID: "4", Name: "Pat Patient", Email: "pat.patient@email.com", Role: auth.RolePatient, Title: "Patient", Password: "password123"},
		},
	}
}

var specialties = []string{
	"Cardiologist", "Neurologist", "Radiologist", "Pediatrician",
	"Dermatologist", "Oncologist", "Orthopedist", "Psychiatrist",
}

var patientStatuses = []patients.Status{
	patients.StatusStable, patients.StatusRecovering, patients.StatusCritical,
}

func fakePhone(f *gofakeit.Faker) string {
	return fmt.Sprintf("%03d-%03d-%04d", f.Number(100, 999), f.Number(100, 999), f.Number(1000, 9999))
}

// RandomPatients appends n generated patients after the demo set, keeping
// ids contiguous with the given starting id.
func RandomPatients(f *gofakeit.Faker, startID, n int) []patients.Patient {
	out := make([]patients.Patient, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, patients.Patient{
			ID:           startID + i,
			Name:         f.Name(),
			Age:          f.Number(18, 90),
			Gender:       f.RandomString([]string{"Male", "Female"}),
			ContactPhone: fakePhone(f),
			LastVisit:    day(-f.Number(1, 120)),
			Status:       patientStatuses[f.Number(0, len(patientStatuses)-1)],
		})
	}
	return out
}

// RandomDoctors mirrors RandomPatients for the provider directory.
func RandomDoctors(f *gofakeit.Faker, startID, n int) []doctors.Doctor {
	out := make([]doctors.Doctor, 0, n)
	for i := 0; i < n; i++ {
		name := f.Name()
		out = append(out, doctors.Doctor{
			ID:           startID + i,
			Name:         "Dr. " + name,
			Specialty:    specialties[f.Number(0, len(specialties)-1)],
			ContactPhone: fakePhone(f),
			Email:        f.Email(),
		})
	}
	return out
}
