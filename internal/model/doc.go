// Package model defines the data passed between the qrgen pipeline stages.
//
// # Render Parameters
//
// RenderParams carries the symbol geometry and colours for one run:
//
//	p := model.RenderParams{Version: 1, BoxSize: 10, Border: 5, FillColor: "red", BackColor: "white"}
//	fmt.Println(p.ImageSize(21)) // 310 pixels for a version 1 symbol
//
// # Output
//
// Output holds the destination directory and file path:
//
//	out := model.NewOutput(cwd, "qr_codes", time.Now())
//	fmt.Println(out.Path) // <cwd>/qr_codes/QRCode_20240102150405.png
package model
