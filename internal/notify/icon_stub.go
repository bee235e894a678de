//go:build !linux

package notify

func iconFor(string) string { return DefaultIcon }
