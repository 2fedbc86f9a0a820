/*
Package dab -- short for Data Access Broker -- contains the functions that put a module onto the filesystem:
creating the module directory, copying resources into it, and writing its descriptor.

Reads go through an fsx.FS, which is typically `osfs.DirFS("/")` except in test environments;
paths handed to the read side may be absolute, and are trimmed to fit such a filesystem.
Writes go to the host filesystem directly.

None of these functions clean up after a failure.
Whatever was completed before the first error stays on disk.
*/
package dab
