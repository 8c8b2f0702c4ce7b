// Package mocks provides shared mock implementations for testing.
//
// Mocks come in two flavours, matching how they are used:
//
//   - Function-field mocks (MockNumberConversionClient) for tests that want to
//     script behaviour inline and inspect recorded calls.
//   - testify/mock mocks (MockNumberDispatcher) for tests that assert on
//     expectations.
//
//	client := &mocks.MockNumberConversionClient{
//	    NumberToWordsFn: func(ctx context.Context, ubiNum string) (string, error) {
//	        return "five", nil
//	    },
//	}
package mocks
