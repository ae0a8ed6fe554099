//convlint:namespace acme.app.nscase
package nscase

type Good struct {
	Name string
}

type AlsoGood int
