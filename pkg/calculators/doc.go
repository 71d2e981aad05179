/*
Package calculators holds the calculator implementations shipped with this
module. Importing the package registers them by name in registry.Default.
*/
package calculators
