package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"loycal/internal/domain"
	"loycal/internal/reporting"
)

type ProgramCache struct {
	mock.Mock
}

func NewProgramCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProgramCache {
	m := &ProgramCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProgramCache) GetProgram(ctx context.Context, restaurantID string) (*domain.LoyaltyProgram, bool) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.LoyaltyProgram), args.Bool(1)
}

func (m *ProgramCache) SetProgram(ctx context.Context, program *domain.LoyaltyProgram) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *ProgramCache) Invalidate(ctx context.Context, restaurantID string) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderPublisher) PublishOrderPaid(ctx context.Context, event domain.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(orderID string) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type ReportStore struct {
	mock.Mock
}

func NewReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReportStore {
	m := &ReportStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReportStore) RecordPaidOrder(event domain.OrderEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *ReportStore) Summary(restaurantID string) (*reporting.Summary, error) {
	args := m.Called(restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reporting.Summary), args.Error(1)
}
