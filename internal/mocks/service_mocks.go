// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/service"
)

type MockResolver struct {
	mock.Mock
}

func NewMockResolver(t mock.TestingT) *MockResolver {
	m := &MockResolver{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockResolver) Resolve(point model.GeoPoint) model.ServiceabilityResult {
	args := m.Called(point)
	return args.Get(0).(model.ServiceabilityResult)
}

type MockPricer struct {
	mock.Mock
}

func NewMockPricer(t mock.TestingT) *MockPricer {
	m := &MockPricer{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockPricer) Predict(items []model.ScrapItem) (model.BasketPrediction, error) {
	args := m.Called(items)
	return args.Get(0).(model.BasketPrediction), args.Error(1)
}

type MockAvailabilityChecker struct {
	mock.Mock
}

func NewMockAvailabilityChecker(t mock.TestingT) *MockAvailabilityChecker {
	m := &MockAvailabilityChecker{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockAvailabilityChecker) Check(ctx context.Context, q model.AvailabilityQuery) (model.AvailabilityReport, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(model.AvailabilityReport), args.Error(1)
}

type MockAddressSuggester struct {
	mock.Mock
}

func NewMockAddressSuggester(t mock.TestingT) *MockAddressSuggester {
	m := &MockAddressSuggester{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockAddressSuggester) Suggest(query string) []model.AddressSuggestion {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.AddressSuggestion)
}

type MockAssistant struct {
	mock.Mock
}

func NewMockAssistant(t mock.TestingT) *MockAssistant {
	m := &MockAssistant{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockAssistant) Reply(message, pincode string) model.ChatReply {
	args := m.Called(message, pincode)
	return args.Get(0).(model.ChatReply)
}

var (
	_ service.Resolver            = (*MockResolver)(nil)
	_ service.Pricer              = (*MockPricer)(nil)
	_ service.AvailabilityChecker = (*MockAvailabilityChecker)(nil)
	_ service.AddressSuggester    = (*MockAddressSuggester)(nil)
	_ service.Assistant           = (*MockAssistant)(nil)
)
