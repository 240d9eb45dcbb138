// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package laws

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"code.hybscloud.com/typeclass"
)

// ErrLawViolation is wrapped by every [*Violation].
var ErrLawViolation = errors.New("law violation")

// Result is the outcome of one law on one sample.
type Result struct {
	Class  string
	Law    string
	Sample int
	Pass   bool
	Detail string
}

func (res Result) String() string {
	status := "ok"
	if !res.Pass {
		status = "FAIL"
	}
	s := fmt.Sprintf("%s.%s[%d]: %s", res.Class, res.Law, res.Sample, status)
	if res.Detail != "" {
		s += ": " + res.Detail
	}
	return s
}

// Violation is a failed [Result] as an error.
type Violation struct {
	Result
}

func (v *Violation) Error() string {
	return fmt.Sprintf("laws: %v: %s.%s on sample %d: %s", ErrLawViolation, v.Class, v.Law, v.Sample, v.Detail)
}

func (v *Violation) Unwrap() error { return ErrLawViolation }

// Report collects the results of one [Check].
type Report struct {
	ID      uuid.UUID
	Tag     typeclass.Tag
	Results []Result
}

// Failures returns the failed results in check order.
func (rep *Report) Failures() []Result {
	var out []Result
	for _, res := range rep.Results {
		if !res.Pass {
			out = append(out, res)
		}
	}
	return out
}

// Passed reports whether every checked law held.
func (rep *Report) Passed() bool {
	return len(rep.Failures()) == 0
}

// Err joins a [*Violation] per failed result, or returns nil.
func (rep *Report) Err() error {
	var errs []error
	for _, res := range rep.Failures() {
		errs = append(errs, &Violation{Result: res})
	}
	return errors.Join(errs...)
}
