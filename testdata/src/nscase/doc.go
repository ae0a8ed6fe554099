// Package nscase exercises the namespace rule.
//
//convlint:config {root: acme.app, depth: 2}
package nscase
