// Package inner exercises depth-two namespace derivation.
//
//convlint:config {root: acme.app, depth: 2}
package inner
