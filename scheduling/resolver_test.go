package scheduling

import (
	"testing"

	"github.com/OmVilasShimpi/LocalGPSystem/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appt(id, patientID int, date, start, status string) models.Appointment {
	return models.Appointment{
		AppointmentID: id,
		DoctorID:      1,
		PatientID:     patientID,
		Date:          date,
		StartTime:     start,
		Status:        status,
	}
}

func TestResolveLatestPerPatientBookedOutranksFinished(t *testing.T) {
	// The completed visit is chronologically later, but the older live
	// booking still wins the patient's slot in the summary.
	history := []models.Appointment{
		appt(1, 7, "2025-01-01", "09:00", models.StatusCompleted),
		appt(2, 7, "2024-12-01", "09:00", models.StatusBooked),
	}

	winners, skipped := ResolveLatestPerPatient(history)
	require.Zero(t, skipped)
	require.Contains(t, winners, 7)
	assert.Equal(t, 2, winners[7].AppointmentID)
}

func TestResolveLatestPerPatientLaterStartWins(t *testing.T) {
	history := []models.Appointment{
		appt(1, 7, "2025-03-01", "09:00", models.StatusBooked),
		appt(2, 7, "2025-03-05", "09:00", models.StatusBooked),
		appt(3, 8, "2025-02-01", "14:00", models.StatusCompleted),
		appt(4, 8, "2025-02-01", "09:00", models.StatusCompleted),
	}

	winners, skipped := ResolveLatestPerPatient(history)
	require.Zero(t, skipped)
	assert.Equal(t, 2, winners[7].AppointmentID)
	assert.Equal(t, 3, winners[8].AppointmentID)
}

func TestResolveLatestPerPatientOrderIndependent(t *testing.T) {
	base := []models.Appointment{
		appt(1, 7, "2025-01-01", "09:00", models.StatusCompleted),
		appt(2, 7, "2024-12-01", "09:00", models.StatusBooked),
		appt(3, 7, "2024-11-01", "10:00", models.StatusBooked),
		appt(4, 8, "2025-02-01", "14:00", models.StatusCancelled),
	}

	permutations := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}

	var first map[int]models.Appointment
	for _, perm := range permutations {
		ordered := make([]models.Appointment, 0, len(base))
		for _, i := range perm {
			ordered = append(ordered, base[i])
		}
		winners, skipped := ResolveLatestPerPatient(ordered)
		require.Zero(t, skipped)
		if first == nil {
			first = winners
			continue
		}
		assert.Equal(t, first, winners)
	}

	// Between the two bookings for patient 7, the later start wins
	assert.Equal(t, 2, first[7].AppointmentID)
	assert.Equal(t, 4, first[8].AppointmentID)
}

func TestResolveLatestPerPatientPadsClocks(t *testing.T) {
	history := []models.Appointment{
		appt(1, 7, "2025-03-01", "9:00:00", models.StatusCompleted),
		appt(2, 7, "2025-03-01", "10:00:00", models.StatusCompleted),
	}

	winners, skipped := ResolveLatestPerPatient(history)
	require.Zero(t, skipped)
	assert.Equal(t, 2, winners[7].AppointmentID)
}

func TestResolveLatestPerPatientSkipsMalformedRows(t *testing.T) {
	history := []models.Appointment{
		appt(1, 0, "2025-03-01", "09:00", models.StatusBooked),  // no patient
		appt(2, 7, "", "09:00", models.StatusBooked),            // no date
		appt(3, 7, "2025-03-01", "", models.StatusBooked),       // no start
		appt(4, 7, "2025-03-01", "banana", models.StatusBooked), // unparsable
		appt(5, 7, "2025-03-01", "09:00", models.StatusBooked),
	}

	winners, skipped := ResolveLatestPerPatient(history)
	assert.Equal(t, 4, skipped)
	require.Len(t, winners, 1)
	assert.Equal(t, 5, winners[7].AppointmentID)
}

func TestResolveLatestPerPatientEmptyHistory(t *testing.T) {
	winners, skipped := ResolveLatestPerPatient(nil)
	assert.Zero(t, skipped)
	assert.Empty(t, winners)
}
