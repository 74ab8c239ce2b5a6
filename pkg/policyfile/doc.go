// Package policyfile loads authorization policy from YAML: the tenant
// catalog with per-tenant feature entitlements, and the per-tenant
// role-capability matrix.
//
// A policy document is validated eagerly at parse time (enum values,
// duplicate tenants, grants referencing undeclared tenants), so a
// process that boots successfully holds a policy every registry will
// accept. The file path is usually resolved from the POLICY_FILE
// environment variable via LoadFromEnv.
//
// Example document:
//
//	tenants:
//	  - id: school_a
//	    name: Greenwood Academy
//	    tier: enterprise
//	    features:
//	      - feature: student_management
//	        enabled: true
//	roles:
//	  school_a:
//	    admin:
//	      student_management: {view: true, create: true, edit: true, delete: true, admin: true}
package policyfile
