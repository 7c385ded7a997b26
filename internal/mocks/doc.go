// Package mocks provides centralized mock implementations for testing.
//
// Store and CountryService mocks are built on testify/mock and are
// configured with On(...).Return(...). MockPersonService follows the
// function-field style: set the Fn field for the methods a test exercises
// and leave the rest returning the defaults.
//
//	personStore := &mocks.MockPersonStore{}
//	personStore.On("GetByID", mock.Anything, id).Return(person, nil)
package mocks
