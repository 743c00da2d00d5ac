package services_test

import (
	"context"

	"github.com/rubayet36/jatri-ovijog/internal/core/domain"
)

// stubUserStore is an in-memory stand-in for the upstream users table
type stubUserStore struct {
	users     []domain.Record
	lookupErr error
	createErr error
	created   []domain.Record
}

func (s *stubUserStore) GetUsersByEmail(_ context.Context, email string) ([]domain.Record, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	var matches []domain.Record
	for _, u := range s.users {
		if u["email"] == email {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

func (s *stubUserStore) CreateUser(_ context.Context, payload domain.Record) (domain.Record, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	row := domain.Record{"id": float64(len(s.created) + 1)}
	for k, v := range payload {
		row[k] = v
	}
	s.created = append(s.created, row)
	return row, nil
}

// stubComplaintStore records the payloads it receives
type stubComplaintStore struct {
	rows []domain.Record

	createdInserts []domain.ComplaintInsert
	patchedIDs     []int64
	patchedFields  []domain.Record
	patchResp      domain.Record
}

func (s *stubComplaintStore) GetComplaints(_ context.Context) ([]domain.Record, error) {
	return s.rows, nil
}

func (s *stubComplaintStore) CreateComplaint(_ context.Context, payload domain.ComplaintInsert) (domain.Record, error) {
	s.createdInserts = append(s.createdInserts, payload)
	return domain.Record{"id": float64(1)}, nil
}

func (s *stubComplaintStore) UpdateComplaint(_ context.Context, id int64, fields domain.Record) (domain.Record, error) {
	s.patchedIDs = append(s.patchedIDs, id)
	s.patchedFields = append(s.patchedFields, fields)
	if s.patchResp != nil {
		return s.patchResp, nil
	}
	return domain.Record{}, nil
}

// stubEmergencyStore records the payloads it receives
type stubEmergencyStore struct {
	rows    []domain.Record
	created []domain.Record
}

func (s *stubEmergencyStore) GetEmergencies(_ context.Context) ([]domain.Record, error) {
	return s.rows, nil
}

func (s *stubEmergencyStore) CreateEmergency(_ context.Context, payload domain.Record) (domain.Record, error) {
	s.created = append(s.created, payload)
	return payload, nil
}
