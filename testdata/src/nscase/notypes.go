//convlint:namespace acme.app.nscase
package nscase

// No type declarations here: the file-level declaration matches on its own.

func helper() string {
	return "nscase"
}
