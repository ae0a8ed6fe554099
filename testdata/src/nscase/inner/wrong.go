//convlint:namespace acme.app.inner
package inner

type Misplaced struct{} // want `Type Misplaced has namespace 'acme\.app\.inner' but expected 'acme\.app\.nscase\.inner'`
