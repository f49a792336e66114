// See node.go for the Node tagged variant this package centers on.
package pir
