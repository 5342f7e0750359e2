// Package watch implements `adoc watch`'s file-watching loop: an
// fsnotify-based Watcher that debounces rapid successive writes from
// editors and notifies the caller once the watched file has settled.
package watch
