// Package dashboard projects resolved capability snapshots into the
// declarative shapes the UI layer renders: quick-action descriptors and
// statistic keys. The projection performs no authorization of its own:
// a snapshot entry exists because pkg/authz granted it, and Project
// neither adds nor re-evaluates anything.
//
// AccessMatrix runs the pipeline in reverse for audit and demo screens:
// it renders the full role×feature cross-product of a tenant with both
// authorization levels and their conjunction side by side.
//
// Malformed snapshots fail loudly (ErrMalformedSnapshot); they indicate
// a bug upstream, never a user-facing denial.
package dashboard
