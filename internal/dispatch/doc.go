// Package dispatch runs a resolved command's script as a child process.
//
// The child runs as `<shell> -c <script>` with the exported arguments added
// to the inherited environment and the parent's standard streams connected
// directly. The parent waits for the child; there is no cancellation. The
// child's termination status is classified into one of three outcomes:
// a normal exit code, a kill by signal, or an exit code outside 0..255.
package dispatch
