// Package resources keeps the fonts, images and texts referenced by styled
// trees and mirrors them into a renderer through resource updates.
//
// Fonts and images are loaded on first use by AddFontsAndImages. Every frame
// that uses an entry takes a reference on it; GarbageCollect removes the
// entries no frame referenced since the previous collection.
package resources
