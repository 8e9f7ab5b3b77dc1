package markup

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer filters untrusted markup. *bluemonday.Policy satisfies it.
type Sanitizer interface {
	Sanitize(s string) string
}

var (
	ugcPolicyOnce sync.Once
	ugcPolicy     *bluemonday.Policy
)

// UGCSanitizer returns a shared policy for user-supplied fragments such as
// clinical notes: basic formatting and links survive, scripts, styles and
// event handlers do not.
func UGCSanitizer() *bluemonday.Policy {
	ugcPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		ugcPolicy = policy
	})
	return ugcPolicy
}
