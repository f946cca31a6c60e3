// Command lumiere is the image viewer: type a URL, see the image, go
// fullscreen via double-click or the floating action menu.
package main

func main() {
	Execute()
}
