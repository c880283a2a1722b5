// Package motion holds the scroll and frame rules of the story page as plain
// functions over explicit state: section tracking, camera placement, parallax
// easing, idle spin and section spin tweens. Nothing here touches the window,
// so every rule can be stepped by hand in tests.
package motion
