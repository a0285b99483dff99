// Package capture locates the JSON payload inside exported client telemetry.
//
// Inputs are either a bare payload file (possibly with socket framing such as
// "5:::" in front of the JSON object) or a HAR archive recorded by a browser's
// developer tools. For archives, the payload is the first recorded response
// whose body starts with a sentinel prefix naming the server-side proxy that
// produced it: Proxy_GroupProject for holdings, Proxy_Guild for the roster.
//
// Extract never validates the payload beyond finding the opening brace; shape
// checks belong to the consumer.
package capture
