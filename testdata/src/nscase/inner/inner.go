//convlint:namespace acme.app.nscase.inner
package inner

type Deep struct{}
