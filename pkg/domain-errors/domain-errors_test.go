package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorString() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeNotFound, Message: "account not found"}
		s.Equal("account not found", err.Error())
	})

	s.Run("falls back to code", func() {
		err := &Error{Code: CodeDependencyUnavailable}
		s.Equal("dependency_unavailable", err.Error())
	})
}

func (s *DomainErrorsSuite) TestIsMatchesByCode() {
	a := &Error{Code: CodeDependencyFailure, Message: "cards returned 500"}
	b := &Error{Code: CodeDependencyFailure, Message: "cards returned 404"}
	s.True(errors.Is(a, b))
	s.False(errors.Is(a, &Error{Code: CodeContractMismatch}))
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("keeps the original domain code", func() {
		original := New(CodeNotFound, "account not found")
		wrapped := Wrap(original, CodeInternal, "loading customer details")

		var domainErr *Error
		s.Require().True(errors.As(wrapped, &domainErr))
		s.Equal(CodeNotFound, domainErr.Code)
		s.Equal("loading customer details", domainErr.Message)
	})

	s.Run("uses the provided code for plain errors", func() {
		root := errors.New("dial tcp: connection refused")
		wrapped := Wrap(root, CodeDependencyUnavailable, "cards service unavailable")

		s.True(HasCode(wrapped, CodeDependencyUnavailable))
		s.True(errors.Is(wrapped, root))
	})
}

func (s *DomainErrorsSuite) TestHasCode() {
	s.False(HasCode(nil, CodeNotFound))
	s.False(HasCode(errors.New("plain"), CodeNotFound))
	s.True(HasCode(fmt.Errorf("outer: %w", New(CodeTimeout, "slow")), CodeTimeout))
}
