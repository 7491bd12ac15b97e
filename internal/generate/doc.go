// Package generate runs the qrgen pipeline for a single URL.
//
// # Generator
//
// The Generator coordinates one run:
//
//  1. Compute the timestamped output path
//  2. Create the output directory
//  3. Validate the URL
//  4. Encode the QR matrix
//  5. Rasterize it with the configured colours
//  6. Write the PNG
//
// # Basic Usage
//
//	g := generate.NewGenerator(settings, cwd)
//	res, err := g.Run(ctx, "https://example.com")
//	if err != nil {
//	    // ErrDirectory: nothing was attempted
//	}
//	generate.Report(log, res)
//
// # Outcomes
//
// Every run ends in one of three terminal states:
//   - StateSaved: the image was written to res.Output.Path
//   - StateAborted: the URL was invalid, nothing was rendered
//   - StateFailed: encoding, rendering or writing failed
//
// Only a directory failure is returned as an error from Run. All other
// failures are carried in Result.Err as a *StageError that matches one of
// ErrInvalidURL, ErrEncode, ErrRender or ErrWrite.
package generate
