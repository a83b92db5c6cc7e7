//go:build unit

package controllers

import "context"

// Watch exposes the scheduling loop of the watch controller.
func (it *WatchController) Watch(ctx context.Context, schedule string, pass func(context.Context)) error {
	return it.watch(ctx, schedule, pass)
}
