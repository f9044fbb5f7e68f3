// Package organize sorts an extracted archive tree into buckets.
//
// Every file under the extraction root is classified by its lower-cased
// extension into images, audio or other, copied flat into
// assets_organized/<bucket>/ and recorded in assets_organized/manifest.json
// under its original path relative to the root. Hidden files, the APK
// internals AndroidManifest.xml, classes.dex and resources.arsc, and
// anything already below assets_organized are skipped, which makes repeated
// runs over the same tree produce the same manifest.
package organize
