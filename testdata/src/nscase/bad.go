//convlint:namespace acme.app
package nscase

type Bad struct{} // want `Type Bad has namespace 'acme\.app' but expected 'acme\.app\.nscase'`
